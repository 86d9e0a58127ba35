package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachinkumar2222/Productr/domain"
	"github.com/sachinkumar2222/Productr/internal/http/middleware"
	"github.com/sachinkumar2222/Productr/internal/mocks"
)

func newProductRouter(productSvc domain.ProductService, caller string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.IdentityIDKey, caller) })

	h := NewProductHandlers(productSvc)
	r.POST("/api/products/create", h.Create)
	r.GET("/api/products", h.List)
	r.GET("/api/products/:id", h.Get)
	r.PUT("/api/products/:id", h.Update)
	r.PATCH("/api/products/:id/publish", h.TogglePublish)
	r.DELETE("/api/products/:id", h.Delete)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProductHandlers_Create(t *testing.T) {
	t.Run("decodes data URLs and keeps https references", func(t *testing.T) {
		svc := mocks.NewMockProductService()
		var gotInput domain.ProductInput
		svc.CreateFunc = func(ctx context.Context, callerID string, input domain.ProductInput) (*domain.Product, error) {
			require.Equal(t, "owner-1", callerID)
			gotInput = input
			return &domain.Product{ID: "p1", OwnerID: callerID, Name: input.Name, Images: []string{}}, nil
		}

		encoded := base64.StdEncoding.EncodeToString([]byte("pixels"))
		body := `{
			"name":"Mouse","type":"Electronics","stock":3,"mrp":100,"sellingPrice":80,
			"brand":"Logi","eligibility":"Yes",
			"images":["https://cdn.test/old","data:image/png;base64,` + encoded + `"]
		}`

		w := doRequest(t, newProductRouter(svc, "owner-1"), http.MethodPost, "/api/products/create", body)
		require.Equal(t, http.StatusCreated, w.Code)

		require.Len(t, gotInput.Images, 2)
		assert.False(t, gotInput.Images[0].IsInline())
		assert.Equal(t, "https://cdn.test/old", gotInput.Images[0].Ref)
		assert.True(t, gotInput.Images[1].IsInline())
		assert.Equal(t, []byte("pixels"), gotInput.Images[1].Data)
		assert.True(t, gotInput.Eligibility)
	})

	t.Run("unrecognized image entry is rejected before the service runs", func(t *testing.T) {
		svc := mocks.NewMockProductService()
		svc.CreateFunc = func(ctx context.Context, callerID string, input domain.ProductInput) (*domain.Product, error) {
			t.Fatal("service must not be called")
			return nil, nil
		}

		body := `{"name":"Mouse","type":"Electronics","stock":3,"mrp":100,"sellingPrice":80,"brand":"Logi","images":["ftp://nope"]}`
		w := doRequest(t, newProductRouter(svc, "owner-1"), http.MethodPost, "/api/products/create", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation errors map to 400", func(t *testing.T) {
		svc := mocks.NewMockProductService()
		svc.CreateFunc = func(ctx context.Context, callerID string, input domain.ProductInput) (*domain.Product, error) {
			return nil, domain.ErrValidation
		}

		w := doRequest(t, newProductRouter(svc, "owner-1"), http.MethodPost, "/api/products/create", `{"name":""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandlers_Update(t *testing.T) {
	t.Run("absent images field stays nil, empty array stays non-nil", func(t *testing.T) {
		tests := []struct {
			name      string
			body      string
			wantNil   bool
			wantEmpty bool
		}{
			{"absent", `{"name":"Renamed"}`, true, false},
			{"empty", `{"name":"Renamed","images":[]}`, false, true},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := mocks.NewMockProductService()
				var gotUpd domain.ProductUpdate
				svc.UpdateFunc = func(ctx context.Context, callerID, id string, upd domain.ProductUpdate) (*domain.Product, error) {
					gotUpd = upd
					return &domain.Product{ID: id, OwnerID: callerID, Images: []string{}}, nil
				}

				w := doRequest(t, newProductRouter(svc, "owner-1"), http.MethodPut, "/api/products/p1", tt.body)
				require.Equal(t, http.StatusOK, w.Code)

				if tt.wantNil {
					assert.Nil(t, gotUpd.Images)
				} else {
					require.NotNil(t, gotUpd.Images)
					assert.Empty(t, *gotUpd.Images)
				}
			})
		}
	})

	t.Run("ownership violation maps to 403", func(t *testing.T) {
		svc := mocks.NewMockProductService()
		svc.UpdateFunc = func(ctx context.Context, callerID, id string, upd domain.ProductUpdate) (*domain.Product, error) {
			return nil, domain.ErrForbidden
		}

		w := doRequest(t, newProductRouter(svc, "owner-2"), http.MethodPut, "/api/products/p1", `{"name":"x"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("upload failure maps to 502", func(t *testing.T) {
		svc := mocks.NewMockProductService()
		svc.UpdateFunc = func(ctx context.Context, callerID, id string, upd domain.ProductUpdate) (*domain.Product, error) {
			return nil, domain.ErrAssetUploadFailed
		}

		w := doRequest(t, newProductRouter(svc, "owner-1"), http.MethodPut, "/api/products/p1", `{"name":"x"}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestProductHandlers_ListGetDeleteToggle(t *testing.T) {
	t.Run("list forwards the publish filter", func(t *testing.T) {
		svc := mocks.NewMockProductService()
		var gotPublished *bool
		svc.ListFunc = func(ctx context.Context, callerID string, published *bool) ([]domain.Product, error) {
			gotPublished = published
			return []domain.Product{{ID: "p1", Images: []string{}}}, nil
		}

		r := newProductRouter(svc, "owner-1")

		w := doRequest(t, r, http.MethodGet, "/api/products", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, gotPublished)

		w = doRequest(t, r, http.MethodGet, "/api/products?isPublished=true", "")
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotPublished)
		assert.True(t, *gotPublished)

		w = doRequest(t, r, http.MethodGet, "/api/products?isPublished=banana", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get missing product maps to 404", func(t *testing.T) {
		svc := mocks.NewMockProductService()
		w := doRequest(t, newProductRouter(svc, "owner-1"), http.MethodGet, "/api/products/p1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete success", func(t *testing.T) {
		svc := mocks.NewMockProductService()
		svc.DeleteFunc = func(ctx context.Context, callerID, id string) error { return nil }

		w := doRequest(t, newProductRouter(svc, "owner-1"), http.MethodDelete, "/api/products/p1", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("toggle reports the new state", func(t *testing.T) {
		svc := mocks.NewMockProductService()
		svc.TogglePublishFunc = func(ctx context.Context, callerID, id string) (bool, error) {
			return true, nil
		}

		w := doRequest(t, newProductRouter(svc, "owner-1"), http.MethodPatch, "/api/products/p1/publish", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			IsPublished bool `json:"isPublished"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.IsPublished)
	})
}
