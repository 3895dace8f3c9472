package dto

type CounterOutput struct {
	Count           int
	Display         string
	ProgressVisible bool
	Goal            int
	Ratio           float64
	Fraction        float64
	Band            string
	DarkTheme       bool
}

type IncrementInput struct {
	By int
}
