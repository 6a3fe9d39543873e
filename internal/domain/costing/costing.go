// Package costing computes aggregate financial metrics for a project.
// It is pure: no I/O, no side effects, and it never returns an error.
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/domain/entity"
)

// Summary holds the derived financial metrics of a project.
type Summary struct {
	TotalCost decimal.Decimal
	Margin    decimal.Decimal
	// MarginPercentage is income-based: (margin / income) * 100, and 0
	// whenever income is not positive.
	MarginPercentage float64
}

// Summarize computes the total cost, margin and margin percentage of a
// project. Category kinds must already be assigned
// (entity.AssignCategoryKinds); unknown kinds aggregate as generic.
func Summarize(p *entity.Project) Summary {
	totalCost := decimal.Zero

	for i := range p.Categories {
		category := &p.Categories[i]
		if category.Kind == entity.CategoryKindPersonnel {
			totalCost = totalCost.Add(personnelCost(category))
		} else {
			totalCost = totalCost.Add(genericCost(category))
		}
	}

	margin := p.Income.Sub(totalCost)

	marginPercentage := 0.0
	if p.Income.IsPositive() {
		marginPercentage, _ = margin.Div(p.Income).Mul(decimal.NewFromInt(100)).Float64()
	}

	return Summary{
		TotalCost:        totalCost,
		Margin:           margin,
		MarginPercentage: marginPercentage,
	}
}

// genericCost sums the category's direct cost and IVA plus every item's
// unit cost times its billable quantity plus the item's IVA.
func genericCost(category *entity.Category) decimal.Decimal {
	total := category.Cost.Add(category.IVAAmount)
	for i := range category.Items {
		item := &category.Items[i]
		total = total.Add(item.Cost.Mul(item.BillableQuantity()))
		total = total.Add(item.IVAAmount)
	}
	return total
}

// personnelCost aggregates the personnel category. Overtime lines contribute
// the sum of their frozen record costs; the line's own cost and quantity are
// ignored. Other lines contribute cost times billable quantity. No IVA is
// added for personnel lines.
func personnelCost(category *entity.Category) decimal.Decimal {
	total := decimal.Zero
	for i := range category.Items {
		item := &category.Items[i]
		if item.Kind == entity.LineKindOvertime {
			for _, record := range item.OvertimeRecords {
				total = total.Add(record.Cost)
			}
			continue
		}
		total = total.Add(item.Cost.Mul(item.BillableQuantity()))
	}
	return total
}
