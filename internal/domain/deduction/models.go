package deduction

// Rule is one deduction_rules row. Exactly one of FixedAmount or
// RatePercent (with the optional salary range) is meaningful, depending on
// Basis.
type Rule struct {
	Code          string  `json:"code"`
	Basis         string  `json:"basis"`
	FixedAmount   float64 `json:"fixedAmount"`
	RatePercent   float64 `json:"ratePercent"`
	MinSalary     float64 `json:"minSalary"`
	MaxSalary     float64 `json:"maxSalary"`
	BaseTax       float64 `json:"baseTax"`
	ExcessOver    float64 `json:"excessOver"`
	EmployeeShare float64 `json:"employeeShare"`
	Government    bool    `json:"isGovernment"`
	Active        bool    `json:"isActive"`
}
