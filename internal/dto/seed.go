package dto

// DemoSeedResult counts the rows a demo seed run created
type DemoSeedResult struct {
	Communities  int `json:"communities"`
	Members      int `json:"members"`
	Applications int `json:"applications"`
	Volunteers   int `json:"volunteers"`
	Donations    int `json:"donations"`
	Expenses     int `json:"expenses"`
	Pujas        int `json:"pujas"`
	Templates    int `json:"templates"`
}
