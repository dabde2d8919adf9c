package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/nhasan-dev/finarch/internal/category"
	"github.com/nhasan-dev/finarch/internal/currency"
	"github.com/nhasan-dev/finarch/internal/ledger"
)

// entryForm holds the raw field bindings shared by the add and edit forms.
type entryForm struct {
	Kind        string
	Amount      string
	Description string
	Category    string
	NewLabel    string
	Recurrence  string
}

const (
	recurrenceOnce    = "Once"
	recurrenceWeekly  = "Weekly"
	recurrenceMonthly = "Monthly"
)

func recurrenceFromLabel(label string) ledger.Recurrence {
	switch label {
	case recurrenceWeekly:
		return ledger.RecurrenceWeekly
	case recurrenceMonthly:
		return ledger.RecurrenceMonthly
	default:
		return ledger.RecurrenceNone
	}
}

func recurrenceLabel(r ledger.Recurrence) string {
	switch r {
	case ledger.RecurrenceWeekly:
		return recurrenceWeekly
	case ledger.RecurrenceMonthly:
		return recurrenceMonthly
	default:
		return recurrenceOnce
	}
}

// newEntryForm builds the transaction form. Category options follow the
// selected kind; choosing the catch-all opens up the new-label field.
func newEntryForm(reg *category.Registry, display currency.Code, v *entryForm) *huh.Form {
	symbol := currency.Lookup(display).Symbol

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("kind").
				Title("Kind").
				Options(
					huh.NewOption("Expense", string(ledger.KindExpense)),
					huh.NewOption("Income", string(ledger.KindIncome)),
				).
				Value(&v.Kind),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title(fmt.Sprintf("Amount (%s, in %s)", symbol, display)).
				Placeholder("0.00").
				Value(&v.Amount).
				Validate(validateAmount),

			huh.NewInput().
				Key("description").
				Title("Description").
				Placeholder("e.g. Server Hosting").
				Value(&v.Description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("category").
				Title("Classification").
				OptionsFunc(func() []huh.Option[string] {
					ctx, cancel := StoreCtx()
					defer cancel()

					labels, err := reg.ListFor(ctx, ledger.Kind(v.Kind))
					if err != nil {
						labels = category.DefaultsFor(ledger.Kind(v.Kind))
					}

					return huh.NewOptions(labels...)
				}, &v.Kind).
				Value(&v.Category),

			huh.NewInput().
				Key("new_label").
				Title("New Category Label").
				Description(fmt.Sprintf("Only used when Classification is %s", category.CatchAll)).
				Placeholder("e.g. Subscriptions").
				Value(&v.NewLabel),

			huh.NewSelect[string]().
				Key("recurrence").
				Title("Cycle").
				Options(huh.NewOptions(recurrenceOnce, recurrenceWeekly, recurrenceMonthly)...).
				Value(&v.Recurrence),
		),
	).WithWidth(52).WithShowHelp(false)
}

func validateAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive amount")
	}

	return nil
}

// resolveCategory applies the catch-all rule: a non-blank new label replaces
// the sentinel selection.
func resolveCategory(selected, newLabel string) string {
	newLabel = strings.TrimSpace(newLabel)
	if selected == category.CatchAll && newLabel != "" {
		return newLabel
	}

	return selected
}
