package models

// Breakdown holds the five weighted sub-scores, each in [0,100].
type Breakdown struct {
	Impact      int `json:"impact"`
	Expertise   int `json:"expertise"`
	Consistency int `json:"consistency"`
	Quality     int `json:"quality"`
	Growth      int `json:"growth"`
}

type Level struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type Badge struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type Score struct {
	Overall    int       `json:"overall"`
	Breakdown  Breakdown `json:"breakdown"`
	Percentile int       `json:"percentile"`
	Level      Level     `json:"level"`
	Badges     []Badge   `json:"badges"`
	Frameworks []string  `json:"frameworks"`
}
