package handlers

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"farmstand/internal/models"
)

// ---------- fakes ----------

type fakeProducts struct {
	items       map[string]*models.Product
	listMarket  string
	failCreate  bool
	createCalls int
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{items: map[string]*models.Product{}}
}

func (f *fakeProducts) List(_ context.Context, marketID string) ([]models.Product, error) {
	f.listMarket = marketID
	var out []models.Product
	for _, p := range f.items {
		if marketID != "" && (p.Vendor == nil || p.Vendor.MarketID != marketID) {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProducts) ByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProducts) Create(_ context.Context, p *models.Product) error {
	f.createCalls++
	if f.failCreate {
		return gorm.ErrInvalidData
	}
	if p.ID == "" {
		p.ID = "prod-1"
	}
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProducts) Update(_ context.Context, p *models.Product) error {
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

type fakeVendors struct {
	byPhone map[string]*models.Vendor
}

func (f *fakeVendors) ByUserPhone(_ context.Context, phone string) (*models.Vendor, error) {
	v, ok := f.byPhone[phone]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

type fakeUploader struct {
	calls []string
	url   string
}

func (f *fakeUploader) Upload(_ context.Context, dataURI string) (string, error) {
	f.calls = append(f.calls, dataURI)
	return f.url, nil
}

// ---------- harness ----------

type fixture struct {
	router   *gin.Engine
	products *fakeProducts
	vendors  *fakeVendors
	uploader *fakeUploader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{
		products: newFakeProducts(),
		vendors:  &fakeVendors{byPhone: map[string]*models.Vendor{}},
		uploader: &fakeUploader{url: "https://media.example/products/abc.png"},
	}

	h := NewProductHandler(f.products, f.vendors, f.uploader, zap.NewNop())

	r := gin.New()
	r.Use(sessions.Sessions("fs_session", cookie.NewStore([]byte("test-secret"))))
	r.POST("/test/session", func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Set(sessionPhoneKey, c.Query("phone"))
		require.NoError(t, sess.Save())
		c.Status(http.StatusNoContent)
	})

	catalog := r.Group("/products", RequireSession())
	catalog.GET("", h.List)
	catalog.GET("/:productId", h.Get)
	catalog.POST("", h.Create)
	catalog.PUT("/:productId", h.Update)

	f.router = r
	return f
}

// sessionCookies logs a phone in through the session middleware and
// returns the resulting cookies.
func (f *fixture) sessionCookies(t *testing.T, phone string) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/test/session?phone="+url.QueryEscape(phone), nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	return w.Result().Cookies()
}

func (f *fixture) do(t *testing.T, method, target string, form map[string]string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		var body strings.Builder
		mw := multipart.NewWriter(&body)
		for k, v := range form {
			require.NoError(t, mw.WriteField(k, v))
		}
		require.NoError(t, mw.Close())
		req = httptest.NewRequest(method, target, strings.NewReader(body.String()))
		req.Header.Set("Content-Type", mw.FormDataContentType())
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) addVendor(phone, vendorID, marketID string) *models.Vendor {
	v := &models.Vendor{Base: models.Base{ID: vendorID}, Name: "Stand " + vendorID, MarketID: marketID}
	f.vendors.byPhone[phone] = v
	return v
}

func validForm() map[string]string {
	return map[string]string{
		"name":        "Mango",
		"description": "Fresh",
		"tag":         "PRODUCE",
		"image":       "data:image/png;base64,aGVsbG8=",
	}
}
