package chapa

import (
	"testing"

	"github.com/go-playground/assert/v2"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
)

func TestNewInitializePayload(t *testing.T) {
	tests := []struct {
		name            string
		arg             model.PaymentInitRequest
		wantTitle       string
		wantDescription string
		wantHide        string
	}{
		{
			name:            "Defaults when nothing is customized",
			arg:             model.PaymentInitRequest{Amount: "10"},
			wantTitle:       DefaultTitle,
			wantDescription: DefaultDescription,
			wantHide:        DefaultHideReceipt,
		},
		{
			name:            "Top level description is used when customization has none",
			arg:             model.PaymentInitRequest{Description: "Coffee", Customization: &model.Customization{Title: "Shop"}},
			wantTitle:       "Shop",
			wantDescription: "Coffee",
			wantHide:        DefaultHideReceipt,
		},
		{
			name: "Customization description wins over top level description",
			arg: model.PaymentInitRequest{
				Description:   "Coffee",
				Customization: &model.Customization{Description: "Beans"},
				Meta:          &model.PaymentMeta{HideReceipt: "true"},
			},
			wantTitle:       DefaultTitle,
			wantDescription: "Beans",
			wantHide:        "true",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewInitializePayload(tt.arg)
			assert.Equal(t, tt.wantTitle, got.CustomizationTitle)
			assert.Equal(t, tt.wantDescription, got.CustomizationDescription)
			assert.Equal(t, tt.wantHide, got.MetaHideReceipt)
			assert.Equal(t, tt.arg.Amount.String(), got.Amount)
		})
	}
}
