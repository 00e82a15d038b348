package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/depot/internal/domain"
	"github.com/phrazzld/depot/internal/store"
)

// seedProducts is the fixed sample data the warehouse demo starts from.
var seedProducts = []struct {
	id       int
	name     string
	quantity int
}{
	{1, "Pallet Jack", 4},
	{2, "Shrink Wrap Roll", 120},
	{3, "Shipping Labels (roll)", 75},
}

// WarehouseService runs the warehouse manager demo: a keyed repository of
// products whose on-hand quantities are adjusted by a scripted sequence of
// operations, including ones that are expected to fail.
type WarehouseService struct {
	products *store.KeyedRepository[int, *domain.Product]
	out      io.Writer
	logger   *slog.Logger
}

// NewWarehouseService creates the warehouse demo service. If out is nil,
// os.Stdout is used; if logger is nil, the default logger is used.
func NewWarehouseService(out io.Writer, logger *slog.Logger) *WarehouseService {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = slog.Default()
	}

	validate := func(p *domain.Product) error { return p.Validate() }

	return &WarehouseService{
		products: store.NewKeyedRepository[int]("product", validate, logger),
		out:      out,
		logger:   logger.With(slog.String("component", "warehouse_service")),
	}
}

// Run seeds the product repository and drives the scripted operation
// sequence. Individual operation failures are reported and the script
// continues with the next step.
func (s *WarehouseService) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "=== Warehouse Manager ===")

	for _, seed := range seedProducts {
		s.addProduct(ctx, seed.id, seed.name, seed.quantity)
	}

	// Re-adding an existing ID must fail and leave the repository unchanged.
	s.addProduct(ctx, 2, "Shrink Wrap Roll (duplicate)", 10)

	s.showProduct(ctx, 1)
	s.showProduct(ctx, 99)

	s.adjustQuantity(ctx, 2, 95)
	s.adjustQuantity(ctx, 2, -5)
	s.adjustQuantity(ctx, 42, 10)

	s.removeProduct(ctx, 3)
	s.removeProduct(ctx, 3)

	fmt.Fprintf(s.out, "\n%d products on hand:\n", s.products.Len())
	for _, p := range s.products.List(ctx) {
		fmt.Fprintf(s.out, "  #%-3d %-26s qty %3d\n", p.ID, p.Name, p.Quantity)
	}

	return nil
}

// translateProductErr maps generic repository errors to the product-specific
// sentinels so callers and messages name the entity, not the mechanism.
func translateProductErr(err error) error {
	switch {
	case store.IsNotFoundError(err):
		return store.ErrProductNotFound
	case store.IsDuplicateKeyError(err):
		return store.ErrProductExists
	default:
		return err
	}
}

// addProduct inserts a new product, reporting the outcome.
func (s *WarehouseService) addProduct(ctx context.Context, id int, name string, quantity int) {
	product, err := domain.NewProduct(id, name, quantity)
	if err != nil {
		fmt.Fprintf(s.out, "could not add product #%d: %v\n", id, err)
		return
	}

	if err := s.products.Insert(ctx, product); err != nil {
		fmt.Fprintf(s.out, "could not add product #%d: %v\n", id, translateProductErr(err))
		return
	}
	fmt.Fprintf(s.out, "added product #%d: %s (qty %d)\n", id, name, quantity)
}

// showProduct looks a product up by ID, reporting the outcome.
func (s *WarehouseService) showProduct(ctx context.Context, id int) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(s.out, "lookup of product #%d failed: %v\n", id, translateProductErr(err))
		return
	}
	fmt.Fprintf(s.out, "product #%d: %s, qty %d\n", product.ID, product.Name, product.Quantity)
}

// adjustQuantity sets a product's quantity to a new value, reporting the
// outcome. A negative quantity is rejected before the repository is touched,
// so the stored product is unchanged on failure.
func (s *WarehouseService) adjustQuantity(ctx context.Context, id, quantity int) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(s.out, "quantity update for product #%d failed: %v\n", id, translateProductErr(err))
		return
	}

	updated := *product
	if err := updated.SetQuantity(quantity); err != nil {
		fmt.Fprintf(s.out, "quantity update for product #%d failed: %v\n", id, err)
		return
	}

	if err := s.products.Update(ctx, &updated); err != nil {
		fmt.Fprintf(s.out, "quantity update for product #%d failed: %v\n", id, err)
		return
	}
	fmt.Fprintf(s.out, "product #%d quantity set to %d\n", id, quantity)
}

// removeProduct removes a product by ID, reporting the outcome.
func (s *WarehouseService) removeProduct(ctx context.Context, id int) {
	if err := s.products.Remove(ctx, id); err != nil {
		fmt.Fprintf(s.out, "removal of product #%d failed: %v\n", id, translateProductErr(err))
		return
	}
	fmt.Fprintf(s.out, "removed product #%d\n", id)
}
