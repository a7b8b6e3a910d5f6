package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"Catalog/internal/cli/bootstrap"
	"Catalog/internal/cli/model"
	"Catalog/internal/cli/service"
	"Catalog/internal/config"
)

type productsCmd struct{}

func (productsCmd) Name() string { return "products" }
func (productsCmd) Description() string {
	return "List products with the 19% tax"
}
func (productsCmd) Usage() string { return "products [--limit N --offset N]" }

func (productsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	limit := fs.Int("limit", -1, "page size")
	offset := fs.Int("offset", -1, "page offset")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	var params model.ListParams
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "limit":
			params.Limit = limit
		case "offset":
			params.Offset = offset
		}
	})
	if (params.Limit != nil && *params.Limit < 0) || (params.Offset != nil && *params.Offset < 0) {
		return ErrUsage
	}

	return withServices(cfg, func(s *bootstrap.Services) error {
		list, err := await(ctx, service.ListCall(s.Catalog, params))
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(Out, "No products")
			return nil
		}
		for _, p := range list {
			fmt.Fprintf(Out, "- %s  title=%s  price=%s  taxes=%s  category=%s\n",
				p.ID, p.Title, money(p.Price), money(p.Taxes), p.Category.Name)
		}
		fmt.Fprintf(Out, "Total: %d\n", len(list))
		return nil
	})
}

type productsRawCmd struct{}

func (productsRawCmd) Name() string        { return "products-raw" }
func (productsRawCmd) Description() string { return "List products exactly as the server returns them" }
func (productsRawCmd) Usage() string       { return "products-raw" }

func (productsRawCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withServices(cfg, func(s *bootstrap.Services) error {
		list, err := await(ctx, service.ListSimpleCall(s.Catalog))
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(Out, "No products")
			return nil
		}
		for _, p := range list {
			fmt.Fprintf(Out, "- %s  title=%s  price=%s  category=%s\n",
				p.ID, p.Title, money(p.Price), p.Category.Name)
		}
		fmt.Fprintf(Out, "Total: %d\n", len(list))
		return nil
	})
}

type productGetCmd struct{}

func (productGetCmd) Name() string        { return "product-get" }
func (productGetCmd) Description() string { return "Show one product" }
func (productGetCmd) Usage() string       { return "product-get <id>" }

func (productGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id := args[0]
	return withServices(cfg, func(s *bootstrap.Services) error {
		p, err := await(ctx, service.GetCall(s.Catalog, id))
		if err != nil {
			return err
		}
		printProduct(p)
		return nil
	})
}

func printProduct(p model.Product) {
	fmt.Fprintf(Out, "id:          %s\n", p.ID)
	fmt.Fprintf(Out, "title:       %s\n", p.Title)
	fmt.Fprintf(Out, "price:       %s\n", money(p.Price))
	fmt.Fprintf(Out, "description: %s\n", p.Description)
	fmt.Fprintf(Out, "category:    %s (%d)\n", p.Category.Name, p.Category.ID)
	if len(p.Images) > 0 {
		fmt.Fprintf(Out, "images:      %s\n", strings.Join(p.Images, ", "))
	}
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func init() {
	RegisterCmd(productsCmd{})
	RegisterCmd(productsRawCmd{})
	RegisterCmd(productGetCmd{})
}
