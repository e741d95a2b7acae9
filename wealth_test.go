package compound

import "testing"

func wealthStore() Store {
	s := NewStore(now)
	s.Settings.Age = 30.7
	s.Settings.RetirementAge = 33
	s.Settings.InflationRate = 2.5
	s.Investments = []Investment{etf()}
	s.Mortgages = []Mortgage{homeLoan()}
	return s
}

func TestGenerateWealthProjection(t *testing.T) {
	in := NewWealthInputs(wealthStore())
	if in.CurrentAge != 30 || in.RetirementAge != 33 {
		t.Fatalf("NewWealthInputs() ages = %d, %d, want 30, 33", in.CurrentAge, in.RetirementAge)
	}
	points := GenerateWealthProjection(in)
	if len(points) != 4 {
		t.Fatalf("GenerateWealthProjection() returned %d points, want 4", len(points))
	}

	assertDiff(t, "first point", points[0], WealthPoint{Age: 30, Investments: 10000, Property: 800000, Debt: 500000, NetWealth: 310000})

	for i, p := range points {
		if p.Age != 30+i {
			t.Errorf("points[%d].Age = %d, want %d", i, p.Age, 30+i)
		}
		assertClose(t, "NetWealth", p.NetWealth, p.Investments+p.Property-p.Debt)
		// property growing with inflation keeps its real value
		assertClose(t, "Property", p.Property, 800000)
	}

	last := points[3]
	assertClose(t, "Investments", last.Investments, ProjectInvestment(etf(), 3, 2.5).Real)
	assertClose(t, "Debt", last.Debt, AdjustForInflation(RemainingBalanceAfter(homeLoan(), 36), 0.025, 3))
	if last.NetWealth <= points[0].NetWealth {
		t.Errorf("NetWealth at 33 = %.2f, want more than at 30 %.2f", last.NetWealth, points[0].NetWealth)
	}
}

func TestGenerateWealthProjection_PropertyGrowthRate(t *testing.T) {
	s := wealthStore()
	growth := 5.0
	s.Settings.PropertyGrowthRate = &growth

	points := GenerateWealthProjection(NewWealthInputs(s))
	assertClose(t, "Property", points[1].Property, 800000*1.05/1.025)
}

func TestGenerateWealthProjection_RetiredAlready(t *testing.T) {
	s := wealthStore()
	s.Settings.Age, s.Settings.RetirementAge = 72, 70
	points := GenerateWealthProjection(NewWealthInputs(s))
	if len(points) != 1 || points[0].Age != 72 {
		t.Errorf("GenerateWealthProjection() = %+v, want a single point at 72", points)
	}
	// the point is today's wealth, as in the first point of any timeline
	first := GenerateWealthProjection(NewWealthInputs(wealthStore()))[0]
	if points[0].NetWealth != first.NetWealth {
		t.Errorf("GenerateWealthProjection() after retirement = %+v, want today's net wealth %v", points[0], first.NetWealth)
	}
}

func TestProjectWealthAtAge(t *testing.T) {
	invs, morts := []Investment{etf()}, []Mortgage{homeLoan()}

	got := ProjectWealthAtAge(30, 40.5, invs, morts, 2.5)
	p := ProjectInvestment(etf(), 10.5, 2.5)
	debt := RemainingBalanceAfter(homeLoan(), 126)
	want := WealthAtAge{
		Nominal:           p.Nominal,
		Real:              p.Real,
		MortgageRemaining: debt,
		NetWealth:         p.Nominal - debt,
		NetWealthReal:     p.Real - AdjustForInflation(debt, 0.025, 10.5),
	}
	assertDiff(t, "ProjectWealthAtAge()", got, want)

	today := ProjectWealthAtAge(30, 30, invs, morts, 2.5)
	assertDiff(t, "ProjectWealthAtAge(today)", today, WealthAtAge{
		Nominal:           10000,
		Real:              10000,
		MortgageRemaining: 500000,
		NetWealth:         -490000,
		NetWealthReal:     -490000,
	})
}
