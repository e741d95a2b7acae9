// Package compound is the calculation engine of a personal budget and wealth
// projection tool. It is local-first and stateless: every function is a pure
// computation over the user's records, invoked fresh on every read.
//
// The core functionalities include:
//   - Frequency normalization: every amount is reasoned about per week
//     (52 weeks a year), see ToWeekly and FromWeekly.
//   - Growth model: compound interest on balances and on weekly
//     contributions, and inflation discounting to today's money.
//   - Snapshots: investment values, savings amounts and mortgage principals
//     are entered manually from time to time. A recorded value is true as of
//     its timestamp, and "current" values are projected from it, see
//     ProjectCurrentInvestmentValue.
//   - Mortgages: month by month amortization, payoff date and the impact of
//     extra repayments.
//   - Budget: hierarchical budget items whose parents are the sum of their
//     children, totals per category, and virtual items mirroring what
//     investments, savings buckets, mortgages and shared housing cost.
//   - Goals: emergency fund targets and the weekly savings a dated goal needs.
//   - Wealth: the projected net wealth, year by year, until retirement.
//
// Records are plain values: no function of this package modifies its inputs,
// so they are safe to call concurrently. Current time is always a parameter.
package compound
