package entity

import "math"

// OfferedPrice computes the post-discount price for a product.
//
// A nil offer type or nil offer value means no discount and returns the list
// price unchanged. PERCENTAGE subtracts offerValue percent of the price,
// PRICE_OFF subtracts offerValue directly. The result is rounded to the
// nearest whole currency unit and never drops below zero.
func OfferedPrice(price float64, offerType *OfferType, offerValue *float64) float64 {
	if offerType == nil || offerValue == nil || math.IsNaN(*offerValue) {
		return price
	}

	var offered float64
	switch *offerType {
	case OfferPercentage:
		offered = price - price*(*offerValue)/100
	case OfferPriceOff:
		offered = price - *offerValue
	default:
		return price
	}

	offered = math.Round(offered)
	if offered < 0 {
		return 0
	}

	return offered
}
