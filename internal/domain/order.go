package domain

// OrderColumn names a sortable column of the news table.
type OrderColumn string

const (
	OrderByTitle    OrderColumn = "title"
	OrderByDate     OrderColumn = "date"
	OrderByCategory OrderColumn = "category"
	OrderBySource   OrderColumn = "source"
	OrderByAuthor   OrderColumn = "author"
)

// OrderDirection is the sort direction of an OrderBy.
type OrderDirection int

const (
	Ascending OrderDirection = iota
	Descending
)

// OrderBy is the user's requested sort: exactly one column and one direction.
type OrderBy struct {
	Column    OrderColumn
	Direction OrderDirection
}

// DefaultOrder sorts by publish date, newest first.
func DefaultOrder() OrderBy {
	return OrderBy{Column: OrderByDate, Direction: Descending}
}

// NewOrderBy returns an OrderBy for column with its conventional default
// direction: descending for date, ascending for everything else.
func NewOrderBy(column OrderColumn) OrderBy {
	direction := Ascending
	if column == OrderByDate {
		direction = Descending
	}
	return OrderBy{Column: column, Direction: direction}
}

// SortKey renders the order as the store's sort directive: the column name,
// prefixed with "-" when descending. The store resolves directives it does
// not recognize by falling back to insertion order ascending.
func (o OrderBy) SortKey() string {
	if o.Direction == Descending {
		return "-" + string(o.Column)
	}
	return string(o.Column)
}
