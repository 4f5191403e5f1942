package product

// IncreasePrice raises the stored price of every product by percent.
func IncreasePrice(products []*Product, percent float64) error {
	for _, p := range products {
		if err := p.ChangePrice(p.price + p.price*percent/100); err != nil {
			return err
		}
	}

	return nil
}
