package salary

// Reference is a stored salary rate table row. The derived rates are kept
// alongside the monthly figure so downstream reads never re-derive them
// inconsistently; DeriveRates is the single writer.
type Reference struct {
	ID             string  `json:"id"`
	MonthlySalary  float64 `json:"monthlySalary"`
	RatePerDay     float64 `json:"ratePerDay"`
	HalfDayRate    float64 `json:"halfDayRate"`
	RatePerMinute  float64 `json:"ratePerMinute"`
	RatePerUnit    float64 `json:"ratePerUnit"`
	EmploymentType string  `json:"employmentType"`
}
