package model

// SignalType indicates the direction of a generated signal.
type SignalType string

const (
	SignalBuy  SignalType = "buy"
	SignalSell SignalType = "sell"
)

// SignalStrength grades how decisive the triggering rule is.
type SignalStrength string

const (
	StrengthStrong   SignalStrength = "strong"
	StrengthModerate SignalStrength = "moderate"
)

// Signal is one rule-triggered buy/sell indication with its explanation.
type Signal struct {
	Type      SignalType     `json:"type"`
	Strength  SignalStrength `json:"strength"`
	Indicator string         `json:"indicator"`
	Message   string         `json:"message"`
}

// Rating is the five-level recommendation derived from signals and metrics.
type Rating string

const (
	RatingStrongBuy  Rating = "STRONG BUY"
	RatingBuy        Rating = "BUY"
	RatingNeutral    Rating = "NEUTRAL"
	RatingSell       Rating = "SELL"
	RatingStrongSell Rating = "STRONG SELL"
)
