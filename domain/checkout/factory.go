package checkout

type ItemProps struct {
	ID        string
	Name      string
	ProductID string
	Quantity  int
	Price     float64
}

type Props struct {
	ID         string
	CustomerID string
	Items      []ItemProps
}

// Build assembles an order from plain props, e.g. rows read back from storage.
func Build(props Props) (*Order, error) {
	items := make([]OrderItem, 0, len(props.Items))
	for _, item := range props.Items {
		items = append(items, NewOrderItem(item.ID, item.Name, item.Price, item.ProductID, item.Quantity))
	}

	return NewOrder(props.ID, props.CustomerID, items)
}
