package entity

// AssignCategoryKinds stamps category and line kinds from the reserved legacy
// names. It is called at every ingress boundary (cache load, remote row
// mapping, request payloads) so nothing deeper in the system ever matches on
// raw name strings.
//
// At most one category may be personnel: the first category named "Personal"
// wins, any later one is demoted to generic so duplicated names cannot
// silently double the personnel aggregation.
func AssignCategoryKinds(categories []Category) []Category {
	if categories == nil {
		return []Category{}
	}

	personnelSeen := false
	for i := range categories {
		switch {
		case categories[i].Name == PersonnelCategoryName && !personnelSeen:
			categories[i].Kind = CategoryKindPersonnel
			personnelSeen = true
		case categories[i].Name == SuppliesCategoryName:
			categories[i].Kind = CategoryKindSupplies
		default:
			categories[i].Kind = CategoryKindGeneric
		}

		for j := range categories[i].Items {
			item := &categories[i].Items[j]
			if categories[i].Kind == CategoryKindPersonnel &&
				item.Name == OvertimeItemName &&
				len(item.OvertimeRecords) > 0 {
				item.Kind = LineKindOvertime
			} else {
				item.Kind = LineKindStandard
			}
		}
	}

	return categories
}
