package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"storefront/internal/core/flexdate"
	"storefront/internal/core/price"
	"storefront/internal/modkit/module"
	"storefront/internal/platform/logger"
	"storefront/internal/platform/net/http/bind"
	"storefront/internal/services/api"
	catdom "storefront/internal/services/api/categories/domain"
	catmod "storefront/internal/services/api/categories/module"
	proddom "storefront/internal/services/api/products/domain"
	prodmod "storefront/internal/services/api/products/module"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// seedFile is the catalog document read by the seed command
//
//	categories: [Kitchen, Books]
//	products:
//	  - name: Espresso cup
//	    description: Porcelain cup, 90ml
//	    price: "R$ 19,90"
//	    categories: [Kitchen]
type seedFile struct {
	Categories []string      `yaml:"categories"`
	Products   []seedProduct `yaml:"products"`
}

type seedProduct struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Price         string   `yaml:"price"`
	Currency      string   `yaml:"currency"`
	ImgURL        string   `yaml:"img_url"`
	AvailableFrom string   `yaml:"available_from"`
	Categories    []string `yaml:"categories"`
}

func newSeedCommand() *cobra.Command {
	var file string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load categories and products from a YAML catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening catalog: %w", err)
			}
			defer f.Close()

			doc, err := loadSeed(f)
			if err != nil {
				return err
			}
			if dryRun {
				return checkSeed(doc, cmd.OutOrStdout())
			}

			ctx := cmd.Context()
			st, root, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore(st)

			deps := api.Deps(root, st, nil, logger.Get())
			cats := module.MustPortsOf[catmod.Ports](catmod.New(deps)).Resolver
			prods := module.MustPortsOf[prodmod.Ports](prodmod.New(deps)).Creator
			return runSeed(ctx, doc, cats, prods, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog YAML file (required)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and validate without writing")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func loadSeed(r io.Reader) (seedFile, error) {
	var doc seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return doc, fmt.Errorf("catalog is empty")
		}
		return doc, fmt.Errorf("reading catalog: %w", err)
	}
	return doc, nil
}

// input builds the product body; ids maps lower cased category names to ids
func (p seedProduct) input(ids map[string]string) (proddom.ProductInput, error) {
	amount, err := price.Parse(p.Price)
	if err != nil {
		return proddom.ProductInput{}, fmt.Errorf("product %q: %w", p.Name, err)
	}
	in := proddom.ProductInput{
		Name:        p.Name,
		Description: p.Description,
		Price:       price.NewAmount(amount),
		Currency:    strings.ToUpper(strings.TrimSpace(p.Currency)),
		ImgURL:      p.ImgURL,
	}
	if p.AvailableFrom != "" {
		t, err := flexdate.Parse(p.AvailableFrom)
		if err != nil {
			return proddom.ProductInput{}, fmt.Errorf("product %q: %w", p.Name, err)
		}
		in.AvailableFrom = flexdate.On(t)
	}
	for _, name := range p.Categories {
		id, ok := ids[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return proddom.ProductInput{}, fmt.Errorf("product %q: category %q is not listed under categories", p.Name, name)
		}
		in.Categories = append(in.Categories, id)
	}
	return in, nil
}

// checkSeed validates every product with placeholder category ids
func checkSeed(doc seedFile, out io.Writer) error {
	ids := make(map[string]string, len(doc.Categories))
	for _, name := range doc.Categories {
		ids[strings.ToLower(strings.TrimSpace(name))] = "00000000-0000-4000-8000-000000000000"
	}
	for _, p := range doc.Products {
		in, err := p.input(ids)
		if err != nil {
			return err
		}
		if err := bind.Validate(in); err != nil {
			return fmt.Errorf("product %q: %w", p.Name, err)
		}
		fmt.Fprintf(out, "ok %s %s\n", in.Price.String(), p.Name)
	}
	fmt.Fprintf(out, "%d categories, %d products\n", len(doc.Categories), len(doc.Products))
	return nil
}

func runSeed(ctx context.Context, doc seedFile, cats catdom.Resolver, prods proddom.Creator, out io.Writer) error {
	ids := make(map[string]string, len(doc.Categories))
	for _, name := range doc.Categories {
		c, err := cats.Ensure(ctx, name)
		if err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
		ids[strings.ToLower(strings.TrimSpace(name))] = c.ID
		fmt.Fprintf(out, "category %s %s\n", c.Slug, c.ID)
	}

	for _, p := range doc.Products {
		in, err := p.input(ids)
		if err != nil {
			return err
		}
		if err := bind.Validate(in); err != nil {
			return fmt.Errorf("product %q: %w", p.Name, err)
		}
		created, err := prods.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("product %q: %w", p.Name, err)
		}
		fmt.Fprintf(out, "product %s %s %s\n", created.ID, created.Price.String(), created.Name)
	}
	return nil
}
