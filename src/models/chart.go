package models

type ChartDataPoint struct {
	CategoryName string  `json:"category_name"`
	TotalAmount  float64 `json:"total_amount"`
}

type ChartDataResponse struct {
	Status string           `json:"status"`
	Data   []ChartDataPoint `json:"data"`
}
