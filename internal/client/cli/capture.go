package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/edgesync/internal/api"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// CaptureOptions holds flags for the capture command.
type CaptureOptions struct {
	*RootOptions
	Items             []string
	IdempotencyKey    string
	Currency          string
	PaymentMethod     string
	CashierID         string
	CustomerReference string
}

// NewCaptureCommand creates the capture command.
func NewCaptureCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CaptureOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Capture a checkout on the edge store",
		Long: `Capture a checkout on the edge store.

Each --item is SKU:NAME:QUANTITY:UNIT_PRICE. Without --key a fresh UUID is
used as the idempotency key; pass the same key again to replay safely.

Example:
  edgesync-terminal capture -t ICA-STHLM-001 \
    --item MILK:Milk:1:18.50 --item BREAD:Bread:2:29.90`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(cmd, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Items, "item", nil, "line item SKU:NAME:QUANTITY:UNIT_PRICE (repeatable)")
	cmd.Flags().StringVar(&opts.IdempotencyKey, "key", "", "idempotency key (default: random UUID)")
	cmd.Flags().StringVar(&opts.Currency, "currency", "", "ISO currency code (default: server default)")
	cmd.Flags().StringVar(&opts.PaymentMethod, "method", "card", "payment method")
	cmd.Flags().StringVar(&opts.CashierID, "cashier", "", "cashier id")
	cmd.Flags().StringVar(&opts.CustomerReference, "customer", "", "customer reference")

	return cmd
}

func runCapture(cmd *cobra.Command, opts *CaptureOptions) error {
	items, err := parseItems(opts.Items)
	if err != nil {
		return err
	}

	key := opts.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}

	s, err := opts.connect(cmd, true)
	if err != nil {
		return err
	}
	defer s.close()

	ctx, cancel := s.requestContext(cmd.Context())
	defer cancel()

	resp, err := s.client.Capture(ctx, &api.CaptureRequest{
		TerminalID:        s.cfg.TerminalID,
		IdempotencyKey:    key,
		Currency:          opts.Currency,
		PaymentMethod:     opts.PaymentMethod,
		CashierID:         opts.CashierID,
		CustomerReference: opts.CustomerReference,
		LineItems:         items,
	})
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}

	if opts.Format == "json" {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	printCapture(cmd.OutOrStdout(), resp)
	fmt.Fprintf(cmd.OutOrStdout(), "idempotency key: %s\n", key)
	return nil
}

func parseItems(raw []string) ([]models.LineItem, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("at least one --item is required")
	}

	items := make([]models.LineItem, 0, len(raw))
	for _, r := range raw {
		parts := strings.Split(r, ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("item %q: want SKU:NAME:QUANTITY:UNIT_PRICE", r)
		}
		qty, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("item %q: quantity: %w", r, err)
		}
		price, err := decimal.NewFromString(parts[3])
		if err != nil {
			return nil, fmt.Errorf("item %q: unit price: %w", r, err)
		}
		items = append(items, models.LineItem{SKU: parts[0], Name: parts[1], Quantity: qty, UnitPrice: price})
	}
	return items, nil
}
