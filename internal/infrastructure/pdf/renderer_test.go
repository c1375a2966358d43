package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gensetworks/backend/internal/domain/billing"
)

func testInvoice(t *testing.T, itemCount int) *billing.Invoice {
	t.Helper()
	issue := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	inv, err := billing.NewInvoice("INV-2025-0042", "Acme Drilling Co.", issue, 30)
	require.NoError(t, err)
	inv.CustomerEmail = "accounts@acmedrilling.example"
	inv.CustomerAddress = "900 Rig Road, Midland, TX 79701"

	for i := 0; i < itemCount; i++ {
		_, err := inv.AddLineItem(
			fmt.Sprintf("Generator service visit %d", i+1),
			decimal.NewFromInt(1),
			decimal.NewFromInt(250),
			decimal.NewFromFloat(20.63),
			decimal.Zero,
		)
		require.NoError(t, err)
	}
	return inv
}

// pageObjects counts page objects in an uncompressed PDF body.
func pageObjects(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

func TestRenderInvoiceValidation(t *testing.T) {
	r := NewRenderer(zap.NewNop())

	t.Run("nil invoice", func(t *testing.T) {
		_, err := r.RenderInvoice(nil, nil, Options{})
		assert.Error(t, err)
	})

	t.Run("no line items", func(t *testing.T) {
		inv, err := billing.NewInvoice("INV-1", "Customer", time.Now(), 30)
		require.NoError(t, err)
		_, err = r.RenderInvoice(inv, nil, Options{})
		assert.Error(t, err)
	})
}

func TestRenderInvoiceTemplates(t *testing.T) {
	r := NewRenderer(zap.NewNop())
	inv := testInvoice(t, 3)

	for _, tmpl := range []Template{TemplateModern, TemplateClassic, TemplateMinimal, TemplateLuxury} {
		t.Run(string(tmpl), func(t *testing.T) {
			data, err := r.RenderInvoice(inv, nil, Options{Template: tmpl})
			require.NoError(t, err)
			assert.Equal(t, "%PDF", string(data[:4]))
			assert.Contains(t, string(data), "INV-2025-0042")
		})
	}

	t.Run("unknown template uses the standard layout without the divider", func(t *testing.T) {
		data, err := r.RenderInvoice(inv, nil, Options{Template: Template("holographic")})
		require.NoError(t, err)
		assert.Contains(t, string(data), "BILL TO")

		modern, err := r.RenderInvoice(inv, nil, Options{Template: TemplateModern})
		require.NoError(t, err)
		assert.NotEqual(t, modern, data)
	})
}

func TestRenderInvoiceDefaultSettings(t *testing.T) {
	r := NewRenderer(zap.NewNop())
	inv := testInvoice(t, 2)

	data, err := r.RenderInvoice(inv, nil, Options{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "GensetWorks Power Solutions")
}

func TestRenderInvoiceDeterministic(t *testing.T) {
	r := NewRenderer(zap.NewNop())
	inv := testInvoice(t, 4)
	settings := billing.DefaultSettings()
	opts := Options{Template: TemplateClassic, Watermark: true}

	first, err := r.RenderInvoice(inv, settings, opts)
	require.NoError(t, err)
	second, err := r.RenderInvoice(inv, settings, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Creation and modification dates both derive from the issue date, so
	// the trailer carries no wall-clock trace.
	assert.Equal(t, 2, bytes.Count(first, []byte("D:20250315")))
}

func TestRenderInvoicePagination(t *testing.T) {
	r := NewRenderer(zap.NewNop())

	t.Run("short invoice fits one page", func(t *testing.T) {
		data, err := r.RenderInvoice(testInvoice(t, 3), nil, Options{})
		require.NoError(t, err)
		assert.Equal(t, 1, pageObjects(data))
		assert.Contains(t, string(data), "Page 1 of 1")
	})

	t.Run("long invoice spills with header redraw", func(t *testing.T) {
		data, err := r.RenderInvoice(testInvoice(t, 60), nil, Options{})
		require.NoError(t, err)

		pages := pageObjects(data)
		require.Greater(t, pages, 1)
		assert.Contains(t, string(data), fmt.Sprintf("Page 1 of %d", pages))
		assert.Contains(t, string(data), fmt.Sprintf("Page %d of %d", pages, pages))
		assert.GreaterOrEqual(t, bytes.Count(data, []byte("Description")), pages)
	})
}

func TestRenderInvoiceWatermark(t *testing.T) {
	r := NewRenderer(zap.NewNop())
	inv := testInvoice(t, 60)
	inv.Status = billing.StatusPaid

	data, err := r.RenderInvoice(inv, nil, Options{Watermark: true})
	require.NoError(t, err)

	pages := pageObjects(data)
	require.Greater(t, pages, 1)
	assert.GreaterOrEqual(t, bytes.Count(data, []byte("(PAID)")), pages)

	plain, err := r.RenderInvoice(inv, nil, Options{})
	require.NoError(t, err)
	assert.NotContains(t, string(plain), "(PAID)")
}

func TestRenderInvoiceLogoHandling(t *testing.T) {
	r := NewRenderer(zap.NewNop())
	inv := testInvoice(t, 2)

	t.Run("default logo embeds an image", func(t *testing.T) {
		data, err := r.RenderInvoice(inv, nil, Options{})
		require.NoError(t, err)
		assert.Contains(t, string(data), "/Subtype /Image")
	})

	t.Run("logo disabled skips the image", func(t *testing.T) {
		off := false
		data, err := r.RenderInvoice(inv, nil, Options{IncludeLogo: &off})
		require.NoError(t, err)
		assert.NotContains(t, string(data), "/Subtype /Image")
	})

	t.Run("invalid base64 renders without logo", func(t *testing.T) {
		settings := billing.DefaultSettings()
		settings.LogoBase64 = "not-valid-base64!!!"

		data, err := r.RenderInvoice(inv, settings, Options{})
		require.NoError(t, err)
		assert.NotContains(t, string(data), "/Subtype /Image")
		assert.Contains(t, string(data), "BILL TO")
	})

	t.Run("malformed image falls back to plain layout", func(t *testing.T) {
		settings := billing.DefaultSettings()
		settings.LogoBase64 = base64.StdEncoding.EncodeToString([]byte("this is not a png payload"))

		data, err := r.RenderInvoice(inv, settings, Options{})
		require.NoError(t, err)
		assert.NotContains(t, string(data), "/Subtype /Image")
		assert.NotContains(t, string(data), "BILL TO")
		assert.Contains(t, string(data), "Bill To: Acme Drilling Co.")
		assert.Contains(t, string(data), "Page 1 of 1")
	})
}

func TestRenderInvoiceAmounts(t *testing.T) {
	r := NewRenderer(zap.NewNop())
	issue := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	inv, err := billing.NewInvoice("INV-2025-0117", "Gulf Coast Marine", issue, 45)
	require.NoError(t, err)
	_, err = inv.AddLineItem("250kVA generator rental, 2 weeks",
		decimal.NewFromInt(2), decimal.NewFromInt(2500),
		decimal.NewFromInt(500), decimal.NewFromFloat(87.50))
	require.NoError(t, err)

	data, err := r.RenderInvoice(inv, nil, Options{})
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, "$5000.00")
	assert.Contains(t, body, "$5412.50")
	assert.Contains(t, body, "-$87.50")
	assert.Contains(t, body, "(Invoice No.)")
	assert.Contains(t, body, "Jun 01, 2025")
	assert.Contains(t, body, "Jul 16, 2025")
}

func TestRenderInvoiceStatusToken(t *testing.T) {
	r := NewRenderer(zap.NewNop())
	issue := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	inv, err := billing.NewInvoice("INV-1001", "Permian Basin Services", issue, 30)
	require.NoError(t, err)
	inv.Status = billing.StatusSent
	_, err = inv.AddLineItem("Generator Unit",
		decimal.NewFromInt(1), decimal.NewFromInt(5000),
		decimal.NewFromFloat(412.5), decimal.Zero)
	require.NoError(t, err)

	data, err := r.RenderInvoice(inv, nil, Options{})
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, "INV-1001")
	assert.Contains(t, body, "Generator Unit")
	assert.Contains(t, body, "$5000.00")
	assert.Contains(t, body, "$5412.50")
	assert.Contains(t, body, "SENT")
}

func TestRenderInvoiceTemplateContrast(t *testing.T) {
	r := NewRenderer(zap.NewNop())
	inv := testInvoice(t, 3)
	settings := billing.DefaultSettings()

	modern, err := r.RenderInvoice(inv, settings, Options{Template: TemplateModern})
	require.NoError(t, err)
	luxury, err := r.RenderInvoice(inv, settings, Options{Template: TemplateLuxury})
	require.NoError(t, err)

	assert.NotEqual(t, modern, luxury)

	total := "$" + inv.TotalAmount.StringFixed(2)
	assert.Contains(t, string(modern), total)
	assert.Contains(t, string(luxury), total)

	assert.Contains(t, string(modern), "(Terms)")
	assert.NotContains(t, string(luxury), "(Terms)")
	assert.NotContains(t, string(luxury), "(Notes)")
	assert.Contains(t, string(luxury), "Thank you for your business!")
}

func TestOptionsWithDefaults(t *testing.T) {
	inv := testInvoice(t, 1)
	opts := Options{}.withDefaults(inv)

	assert.Equal(t, "Invoice-INV-2025-0042.pdf", opts.Filename)
	assert.Equal(t, FormatA4, opts.Format)
	assert.Equal(t, OrientationPortrait, opts.Orientation)
	assert.Equal(t, TemplateModern, opts.Template)
	assert.True(t, opts.logoEnabled())
}
