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

// stringSlice — повторяемый флаг (--image a --image b).
type stringSlice []string

func (s *stringSlice) String() string { return strings.Join(*s, ",") }

func (s *stringSlice) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type productFlags struct {
	fs          *flag.FlagSet
	title       string
	price       float64
	description string
	category    int64
	images      stringSlice
}

func newProductFlags(name string) *productFlags {
	pf := &productFlags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	pf.fs.SetOutput(io.Discard)
	pf.fs.StringVar(&pf.title, "title", "", "product title")
	pf.fs.Float64Var(&pf.price, "price", 0, "product price")
	pf.fs.StringVar(&pf.description, "description", "", "product description")
	pf.fs.Int64Var(&pf.category, "category", 0, "category id")
	pf.fs.Var(&pf.images, "image", "image URL (repeatable)")
	return pf
}

// set возвращает имена флагов, явно заданных пользователем.
func (pf *productFlags) set() map[string]bool {
	seen := map[string]bool{}
	pf.fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	return seen
}

type productAddCmd struct{}

func (productAddCmd) Name() string        { return "product-add" }
func (productAddCmd) Description() string { return "Create a product" }
func (productAddCmd) Usage() string {
	return "product-add --title T --price P --category ID [--description D] [--image URL]..."
}

func (productAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	pf := newProductFlags("product-add")
	if err := pf.fs.Parse(args); err != nil || pf.fs.NArg() != 0 {
		return ErrUsage
	}
	seen := pf.set()
	if !seen["title"] || !seen["price"] || !seen["category"] || strings.TrimSpace(pf.title) == "" {
		return ErrUsage
	}
	dto := model.CreateProductDTO{
		Title:       pf.title,
		Price:       pf.price,
		Images:      []string(pf.images),
		Description: pf.description,
		CategoryID:  pf.category,
	}
	if dto.Images == nil {
		dto.Images = []string{}
	}
	return withServices(cfg, func(s *bootstrap.Services) error {
		p, err := await(ctx, service.CreateCall(s.Catalog, dto))
		if err != nil {
			return err
		}
		fmt.Fprintln(Out, "Created:")
		printProduct(p)
		return nil
	})
}

type productEditCmd struct{}

func (productEditCmd) Name() string        { return "product-edit" }
func (productEditCmd) Description() string { return "Update the given fields of a product" }
func (productEditCmd) Usage() string {
	return "product-edit <id> [--title T] [--price P] [--category ID] [--description D] [--image URL]..."
}

func (productEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || strings.HasPrefix(args[0], "-") {
		return ErrUsage
	}
	id := args[0]
	pf := newProductFlags("product-edit")
	if err := pf.fs.Parse(args[1:]); err != nil || pf.fs.NArg() != 0 {
		return ErrUsage
	}
	var dto model.UpdateProductDTO
	for name := range pf.set() {
		switch name {
		case "title":
			dto.Title = &pf.title
		case "price":
			dto.Price = &pf.price
		case "description":
			dto.Description = &pf.description
		case "category":
			dto.CategoryID = &pf.category
		case "image":
			dto.Images = []string(pf.images)
		}
	}
	if dto.Empty() {
		return ErrUsage
	}
	return withServices(cfg, func(s *bootstrap.Services) error {
		p, err := await(ctx, service.UpdateCall(s.Catalog, id, dto))
		if err != nil {
			return err
		}
		fmt.Fprintln(Out, "Updated:")
		printProduct(p)
		return nil
	})
}

type productDeleteCmd struct{}

func (productDeleteCmd) Name() string        { return "product-delete" }
func (productDeleteCmd) Description() string { return "Delete a product" }
func (productDeleteCmd) Usage() string       { return "product-delete <id>" }

func (productDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id := args[0]
	return withServices(cfg, func(s *bootstrap.Services) error {
		ok, err := await(ctx, service.DeleteCall(s.Catalog, id))
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(Out, "Deleted: %s\n", id)
		}
		return nil
	})
}

func init() {
	RegisterCmd(productAddCmd{})
	RegisterCmd(productEditCmd{})
	RegisterCmd(productDeleteCmd{})
}
