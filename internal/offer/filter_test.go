package offer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

func TestAdFilters(t *testing.T) {
	type testCase struct {
		title       string
		wantWanted  bool
		wantCharter bool
	}

	tests := []testCase{
		{title: "Suche Discus 2b", wantWanted: true},
		{title: "LS8-18 gesucht", wantWanted: true},
		{title: "Looking for a Pipistrel Alpha", wantWanted: true},
		{title: "SEARCHING ASW 28", wantWanted: true},
		{title: "Robin DR400 Charter", wantCharter: true},
		{title: "Cessna 152 for rent", wantCharter: true},
		{title: "Stemme S10-VT zu verkaufen"},
		{title: "Duo Discus XLT"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.wantWanted, offer.IsWanted(tt.title))
			assert.Equal(t, tt.wantCharter, offer.IsCharter(tt.title))
		})
	}
}
