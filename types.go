package compound

import "time"

// Timestamp is an instant stored as Unix milliseconds, the way records are exported.
type Timestamp int64

// TimestampOf returns the Timestamp of t.
func TimestampOf(t time.Time) Timestamp { return Timestamp(t.UnixMilli()) }

// Time returns the instant as a time.Time.
func (t Timestamp) Time() time.Time { return time.UnixMilli(int64(t)) }

// IsZero reports whether the timestamp is unset.
func (t Timestamp) IsZero() bool { return t == 0 }

// or returns t, or fallback if t is unset.
func (t Timestamp) or(fallback Timestamp) Timestamp {
	if t.IsZero() {
		return fallback
	}
	return t
}

// Category is the budget category of an item, matching the user's mental model.
type Category string

const (
	Necessity Category = "necessity"
	Cost      Category = "cost"
	Savings   Category = "savings"
)

// Categories lists the budget categories in display order.
var Categories = []Category{Necessity, Cost, Savings}

// LinkType is the kind of record a budget item mirrors.
type LinkType string

const (
	LinkInvestment    LinkType = "investment"
	LinkSavingsBucket LinkType = "savings_bucket"
	LinkMortgage      LinkType = "mortgage"
	LinkHousing       LinkType = "housing"
)

// BudgetItem is a budget line, the core unit of the budget.
//
// An item referenced by at least one other item's ParentID is auto-calculated:
// its own Amount is ignored and its value is the sum of its children.
type BudgetItem struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Amount         float64   `json:"amount"` // in Frequency
	Frequency      Frequency `json:"frequency"`
	Category       Category  `json:"category"`
	IsSubscription bool      `json:"isSubscription,omitempty"`
	ParentID       string    `json:"parentId,omitempty"`
	LinkedToID     string    `json:"linkedToId,omitempty"`
	LinkedToType   LinkType  `json:"linkedToType,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      Timestamp `json:"createdAt"`
	UpdatedAt      Timestamp `json:"updatedAt"`

	// Virtual is set on items synthesized from investments, buckets, mortgages or housing.
	Virtual bool `json:"-"`
}

// Weekly returns the item's own amount converted to a weekly amount.
func (b BudgetItem) Weekly() float64 { return ToWeekly(b.Amount, b.Frequency) }

// Investment is an ETF, KiwiSaver or other account, valued manually from time to time.
type Investment struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Type                  string    `json:"type,omitempty"` // etf, kiwisaver, other
	CurrentValue          float64   `json:"currentValue"`
	CurrentValueUpdatedAt Timestamp `json:"currentValueUpdatedAt,omitempty"`
	WeeklyContribution    float64   `json:"weeklyContribution"`
	ExpectedReturnRate    float64   `json:"expectedReturnRate"` // annual %, 7 for 7%
	FeeRate               float64   `json:"feeRate,omitempty"`  // annual %
	Notes                 string    `json:"notes,omitempty"`
	CreatedAt             Timestamp `json:"createdAt"`
	UpdatedAt             Timestamp `json:"updatedAt"`
}

// NetReturnRate returns the expected annual return net of fees, as a decimal.
func (inv Investment) NetReturnRate() float64 {
	return (inv.ExpectedReturnRate - inv.FeeRate) / 100
}

// Mortgage is a home loan whose principal is updated manually from time to time.
type Mortgage struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Principal          float64   `json:"principal"` // balance as of PrincipalUpdatedAt
	PrincipalUpdatedAt Timestamp `json:"principalUpdatedAt,omitempty"`
	OriginalPrincipal  float64   `json:"originalPrincipal"`
	PropertyValue      float64   `json:"propertyValue,omitempty"`
	InterestRate       float64   `json:"interestRate"` // annual %
	WeeklyPayment      float64   `json:"weeklyPayment"`
	ExtraWeeklyPayment float64   `json:"extraWeeklyPayment"`
	StartDate          Timestamp `json:"startDate,omitempty"`
	TermYears          float64   `json:"termYears"`
	Notes              string    `json:"notes,omitempty"`
	CreatedAt          Timestamp `json:"createdAt"`
	UpdatedAt          Timestamp `json:"updatedAt"`
}

// Equity returns the property value minus balance. It can be negative.
func (m Mortgage) Equity(balance float64) float64 { return m.PropertyValue - balance }

// SavingsBucket tracks money put aside for a specific purpose.
type SavingsBucket struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	TargetAmount           float64   `json:"targetAmount"`
	CurrentAmount          float64   `json:"currentAmount"`
	CurrentAmountUpdatedAt Timestamp `json:"currentAmountUpdatedAt,omitempty"`
	WeeklyContribution     float64   `json:"weeklyContribution"`
	ExpectedReturnRate     float64   `json:"expectedReturnRate,omitempty"` // annual %
	TargetDate             Timestamp `json:"targetDate,omitempty"`
	Notes                  string    `json:"notes,omitempty"`
	CreatedAt              Timestamp `json:"createdAt"`
	UpdatedAt              Timestamp `json:"updatedAt"`
}

// GoalType is the kind of a Goal.
type GoalType string

const (
	EmergencyFund GoalType = "emergency_fund"
	WealthGoal    GoalType = "wealth"
	TimeSpecific  GoalType = "time_specific"
	DebtFree      GoalType = "debt_free"
)

// Goal is a financial target.
type Goal struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Type                   GoalType  `json:"type"`
	TargetAmount           float64   `json:"targetAmount"`
	CurrentAmount          float64   `json:"currentAmount"`
	CurrentAmountUpdatedAt Timestamp `json:"currentAmountUpdatedAt,omitempty"`
	TargetDate             Timestamp `json:"targetDate,omitempty"`
	MonthsOfExpenses       float64   `json:"monthsOfExpenses,omitempty"` // emergency_fund only
	LinkedBudgetItemIDs    []string  `json:"linkedBudgetItemIds,omitempty"`
	Notes                  string    `json:"notes,omitempty"`
	CreatedAt              Timestamp `json:"createdAt"`
	UpdatedAt              Timestamp `json:"updatedAt"`
}

// HouseExpense is one line of a shared household's costs.
type HouseExpense struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
	Category  Category  `json:"category"`
}

// SharedHousing describes housing costs split with a partner in proportion to income.
type SharedHousing struct {
	Enabled             bool           `json:"enabled"`
	PartnerWeeklyIncome float64        `json:"partnerWeeklyIncome"`
	Expenses            []HouseExpense `json:"expenses"`
}

// UserSettings holds the user's profile and economic assumptions.
type UserSettings struct {
	Age                  float64   `json:"age"`
	RetirementAge        float64   `json:"retirementAge"`
	AfterTaxWeeklyIncome float64   `json:"afterTaxWeeklyIncome"`
	Currency             string    `json:"currency,omitempty"`
	InflationRate        float64   `json:"inflationRate"` // annual %
	PayFrequency         Frequency `json:"payFrequency,omitempty"`
	PropertyGrowthRate   *float64  `json:"propertyGrowthRate,omitempty"` // annual %, defaults to InflationRate
	CreatedAt            Timestamp `json:"createdAt"`
	UpdatedAt            Timestamp `json:"updatedAt"`
}

// DefaultSettings returns the settings of a new user.
func DefaultSettings(now time.Time) UserSettings {
	return UserSettings{
		Age:           28,
		RetirementAge: 70,
		Currency:      "NZD",
		InflationRate: 2.5,
		CreatedAt:     TimestampOf(now),
		UpdatedAt:     TimestampOf(now),
	}
}
