package quote

import (
	"testing"

	"github.com/lwei/stockticker/internal/model"
)

func continuousQuote() model.RawQuote {
	return model.RawQuote{
		Code:      "sh600519",
		Name:      "贵州茅台",
		Open:      10.0,
		PrevClose: 10.0,
		Price:     10.5,
		High:      10.8,
		Low:       9.9,
		Bid1:      10.49,
		Ask1:      10.50,
		Volume:    200000,
		Amount:    2100000,
		BidQty:    [5]int64{500, 300, 200, 100, 400},
		AskQty:    [5]int64{300, 200, 100, 100, 300},
	}
}

func TestDeriveContinuous(t *testing.T) {
	q := Derive(continuousQuote(), Options{Mode: model.ModeQty})

	if q.Price != "10.50 " {
		t.Errorf("Price = %q, want %q", q.Price, "10.50 ")
	}
	if q.Change != "+0.50" {
		t.Errorf("Change = %q, want %q", q.Change, "+0.50")
	}
	if q.ChangePct != "+5.00%" {
		t.Errorf("ChangePct = %q, want %q", q.ChangePct, "+5.00%")
	}
	// 1500 bid shares vs 1000 ask shares across five levels.
	if q.Committee != "+20.00%" {
		t.Errorf("Committee = %q, want %q", q.Committee, "+20.00%")
	}
	if q.Volume != "20.00万" {
		t.Errorf("Volume = %q, want %q", q.Volume, "20.00万")
	}
	if q.Amount != "210.00万" {
		t.Errorf("Amount = %q, want %q", q.Amount, "210.00万")
	}
	if q.Average != "10.50" {
		t.Errorf("Average = %q, want %q", q.Average, "10.50")
	}

	// Last trade sits on the best ask, so the ask label leads with its marker.
	if q.Bid1 != "5 " {
		t.Errorf("Bid1 = %q, want %q", q.Bid1, "5 ")
	}
	if q.Ask1 != ">3" {
		t.Errorf("Ask1 = %q, want %q", q.Ask1, ">3")
	}

	if q.Signs.Change != 1 || q.Signs.Bid1 != 1 || q.Signs.Ask1 != -1 {
		t.Errorf("Signs = %+v, want Change/Bid1 = 1, Ask1 = -1", q.Signs)
	}

	want := model.Candle{Open: 10.0, Close: 10.5, High: 10.8, Low: 9.9, Ref: 10.0}
	if q.Candle != want {
		t.Errorf("Candle = %+v, want %+v", q.Candle, want)
	}
}

func TestDeriveBidTouched(t *testing.T) {
	raw := continuousQuote()
	raw.Price = 10.49

	q := Derive(raw, Options{Mode: model.ModeQty})
	if q.Bid1 != "5<" {
		t.Errorf("Bid1 = %q, want %q", q.Bid1, "5<")
	}
	if q.Ask1 != " 3" {
		t.Errorf("Ask1 = %q, want %q", q.Ask1, " 3")
	}
}

func TestDeriveBidAskModes(t *testing.T) {
	tests := []struct {
		mode    model.BidAskMode
		wantBid string
		wantAsk string
	}{
		{model.ModeQty, "5 ", ">3"},
		{model.ModePrice, "10.49 ", ">10.50"},
		{model.ModeBoth, "5(10.49) ", ">3(10.50)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			q := Derive(continuousQuote(), Options{Mode: tt.mode})
			if q.Bid1 != tt.wantBid {
				t.Errorf("Bid1 = %q, want %q", q.Bid1, tt.wantBid)
			}
			if q.Ask1 != tt.wantAsk {
				t.Errorf("Ask1 = %q, want %q", q.Ask1, tt.wantAsk)
			}
		})
	}
}

func TestDeriveArrow(t *testing.T) {
	raw := continuousQuote()

	raw.Price = raw.High
	if q := Derive(raw, Options{}); q.Price != "10.80↑" {
		t.Errorf("Price at day high = %q, want %q", q.Price, "10.80↑")
	}

	raw.Price = raw.Low
	if q := Derive(raw, Options{}); q.Price != "9.90↓" {
		t.Errorf("Price at day low = %q, want %q", q.Price, "9.90↓")
	}

	// Flat range suppresses the marker entirely.
	raw.Price, raw.High, raw.Low = 10.0, 10.0, 10.0
	if q := Derive(raw, Options{}); q.Price != "10.00 " {
		t.Errorf("Price on flat range = %q, want %q", q.Price, "10.00 ")
	}
}

func TestDerivePreOpen(t *testing.T) {
	raw := model.RawQuote{
		Code:      "sh600000",
		Name:      "浦发银行",
		PrevClose: 10.0,
		Bid1:      10.0,
		BidQty:    [5]int64{200},
	}

	q := Derive(raw, Options{Mode: model.ModeQty})

	if q.Price != "10.00 " {
		t.Errorf("Price = %q, want fallback to previous close", q.Price)
	}
	if q.Change != "+0.00" {
		t.Errorf("Change = %q, want %q", q.Change, "+0.00")
	}
	// No trade has happened, so the bid at the previous close must not
	// render a touched marker.
	if q.Bid1 != "2 " {
		t.Errorf("Bid1 = %q, want %q", q.Bid1, "2 ")
	}
	if q.Ask1 != " -" {
		t.Errorf("Ask1 = %q, want placeholder for empty ask side", q.Ask1)
	}

	want := model.Candle{Open: 10.0, Close: 10.0, High: 10.0, Low: 10.0, Ref: 10.0}
	if q.Candle != want {
		t.Errorf("Candle = %+v, want %+v", q.Candle, want)
	}
}

func TestDeriveZeroDenominators(t *testing.T) {
	q := Derive(model.RawQuote{Code: "sh600000"}, Options{})

	if q.Change != "+0.00" {
		t.Errorf("Change = %q, want %q", q.Change, "+0.00")
	}
	if q.ChangePct != "+0.00%" {
		t.Errorf("ChangePct = %q, want %q", q.ChangePct, "+0.00%")
	}
	if q.Committee != "+0.00%" {
		t.Errorf("Committee = %q, want %q", q.Committee, "+0.00%")
	}
	if q.Average != "0.00" {
		t.Errorf("Average = %q, want %q", q.Average, "0.00")
	}
	if q.Bid1 != "- " || q.Ask1 != " -" {
		t.Errorf("Bid1/Ask1 = %q/%q, want placeholders", q.Bid1, q.Ask1)
	}
}

func TestDeriveCallAuction(t *testing.T) {
	raw := model.RawQuote{
		Code:      "sz000001",
		PrevClose: 10.0,
		Bid1:      10.2,
		Ask1:      10.2,
		AskQty:    [5]int64{50000, 30000},
	}

	q := Derive(raw, Options{Mode: model.ModeQty})

	if q.Price != "10.20 " {
		t.Errorf("Price = %q, want clearing price %q", q.Price, "10.20 ")
	}
	if q.Bid1 != "500" {
		t.Errorf("Bid1 = %q, want paired lots %q", q.Bid1, "500")
	}
	if q.Ask1 != "-300" {
		t.Errorf("Ask1 = %q, want unpaired surplus %q", q.Ask1, "-300")
	}
	if q.Signs.Bid1 != -1 || q.Signs.Ask1 != -1 {
		t.Errorf("Signs.Bid1/Ask1 = %d/%d, want -1/-1", q.Signs.Bid1, q.Signs.Ask1)
	}
}

func TestDeriveCallAuctionBidSurplus(t *testing.T) {
	raw := model.RawQuote{
		Code:      "sz000001",
		PrevClose: 10.0,
		Bid1:      10.2,
		Ask1:      10.2,
		BidQty:    [5]int64{0, 40000},
		AskQty:    [5]int64{50000, 0},
	}

	q := Derive(raw, Options{Mode: model.ModeQty})

	if q.Ask1 != "+400" {
		t.Errorf("Ask1 = %q, want %q", q.Ask1, "+400")
	}
	if q.Signs.Bid1 != 1 || q.Signs.Ask1 != 1 {
		t.Errorf("Signs.Bid1/Ask1 = %d/%d, want 1/1", q.Signs.Bid1, q.Signs.Ask1)
	}
}

func TestDeriveCallAuctionBothMode(t *testing.T) {
	raw := model.RawQuote{
		Code:      "sz000001",
		PrevClose: 10.0,
		Bid1:      10.2,
		Ask1:      10.2,
		AskQty:    [5]int64{50000, 30000},
	}

	q := Derive(raw, Options{Mode: model.ModeBoth})

	if q.Bid1 != "500(10.20)" {
		t.Errorf("Bid1 = %q, want %q", q.Bid1, "500(10.20)")
	}
	if q.Ask1 != "-300(10.20)" {
		t.Errorf("Ask1 = %q, want %q", q.Ask1, "-300(10.20)")
	}
}

func TestClassify(t *testing.T) {
	crossed := model.RawQuote{Bid1: 10.2, Ask1: 10.2, AskQty: [5]int64{100, 50}}
	if _, ok := Classify(crossed, 2).(model.CallAuction); !ok {
		t.Errorf("crossed book classified as %T, want CallAuction", Classify(crossed, 2))
	}

	// A fully empty book is not an auction.
	empty := model.RawQuote{}
	if _, ok := Classify(empty, 2).(model.Continuous); !ok {
		t.Errorf("empty book classified as %T, want Continuous", Classify(empty, 2))
	}

	normal := model.RawQuote{Bid1: 10.1, Ask1: 10.2}
	if _, ok := Classify(normal, 2).(model.Continuous); !ok {
		t.Errorf("normal book classified as %T, want Continuous", Classify(normal, 2))
	}
}

func TestDeriveETFPrecision(t *testing.T) {
	raw := model.RawQuote{
		Code:      "sh510300",
		PrevClose: 1.230,
		Price:     1.234,
		Open:      1.228,
		High:      1.240,
		Low:       1.225,
		Bid1:      1.233,
		Ask1:      1.234,
		Volume:    100,
		Amount:    123.4,
		BidQty:    [5]int64{100},
		AskQty:    [5]int64{100},
	}

	q := Derive(raw, Options{Mode: model.ModePrice})

	if q.Price != "1.234 " {
		t.Errorf("Price = %q, want 3 fraction digits", q.Price)
	}
	if q.Change != "+0.004" {
		t.Errorf("Change = %q, want %q", q.Change, "+0.004")
	}
	if q.Ask1 != ">1.234" {
		t.Errorf("Ask1 = %q, want %q", q.Ask1, ">1.234")
	}
}

func TestIsETF(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"sh510300", true},
		{"sz159915", true},
		{"sh600519", false},
		{"sz000001", false},
		{"sh", false},
	}

	for _, tt := range tests {
		if got := IsETF(tt.code); got != tt.want {
			t.Errorf("IsETF(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestDeriveDisplayOptions(t *testing.T) {
	raw := continuousQuote()

	q := Derive(raw, Options{ShortCode: true, NameLength: 2})
	if q.Code != "600519" {
		t.Errorf("Code = %q, want %q", q.Code, "600519")
	}
	if q.Name != "贵州" {
		t.Errorf("Name = %q, want %q", q.Name, "贵州")
	}

	q = Derive(raw, Options{})
	if q.Code != "sh600519" || q.Name != "贵州茅台" {
		t.Errorf("Code/Name = %q/%q, want untouched", q.Code, q.Name)
	}
}

func TestScaleVolume(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{9999, "9999"},
		{10000, "1.00万"},
		{1234500, "123.45万"},
		{123456789, "1.23亿"},
	}

	for _, tt := range tests {
		if got := ScaleVolume(tt.in); got != tt.want {
			t.Errorf("ScaleVolume(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScaleAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00万"},
		{50000000, "5000.00万"},
		{200000000, "2.00亿"},
		{2e12, "2.00万亿"},
	}

	for _, tt := range tests {
		if got := ScaleAmount(tt.in); got != tt.want {
			t.Errorf("ScaleAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
