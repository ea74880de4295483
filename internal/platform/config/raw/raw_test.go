package raw

import "testing"

func TestConf(t *testing.T) {
	t.Setenv("LOG_SERVICE", " storefront-api ")
	t.Setenv("LOG_CALLER", "YES")
	t.Setenv("LOG_QUIET", "off")
	t.Setenv("LOG_SAMPLE_EVERY", "10")
	t.Setenv("LOG_NEG", "-3")
	t.Setenv("LOG_JUNK", "12a")

	c := New().Prefix("LOG_")
	if got := c.Get("SERVICE", "x"); got != "storefront-api" {
		t.Fatalf("Get = %q", got)
	}
	if got := c.Get("MISSING", "def"); got != "def" {
		t.Fatalf("Get default = %q", got)
	}
	if !c.GetBool("CALLER", false) || c.GetBool("QUIET", true) || !c.GetBool("MISSING", true) {
		t.Fatalf("GetBool")
	}
	if c.GetInt("SAMPLE_EVERY", 0) != 10 || c.GetInt("NEG", 1) != 1 || c.GetInt("JUNK", 2) != 2 || c.GetInt("MISSING", 3) != 3 {
		t.Fatalf("GetInt")
	}
}
