package basket

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/eshopweb/storefront/lib/mycontext"
	"github.com/eshopweb/storefront/lib/myerrors"
	"github.com/eshopweb/storefront/lib/myhttp"
	"github.com/eshopweb/storefront/lib/mylog"
	"github.com/eshopweb/storefront/services/catalog"
	"github.com/eshopweb/storefront/services/identity"
	"github.com/eshopweb/storefront/services/notify"
)

type webService struct {
	service       Service
	catalog       catalog.Service
	resolver      *identity.Resolver
	authenticator identity.Authenticator
	dispatcher    *notify.Dispatcher
	queueChannel  notify.Channel
	logger        mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(service Service, catalogService catalog.Service, resolver *identity.Resolver, authenticator identity.Authenticator, dispatcher *notify.Dispatcher, queueChannel notify.Channel) *webService {
	return &webService{
		service:       service,
		catalog:       catalogService,
		resolver:      resolver,
		authenticator: authenticator,
		dispatcher:    dispatcher,
		queueChannel:  queueChannel,
		logger:        mylog.New("basketweb"),
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	// Endpoints that compose the userinterface
	router.HandleFunc("/", s.basketPage()).Methods("GET")
	router.HandleFunc("/basket", s.basketPage()).Methods("GET")
	router.HandleFunc("/basket/items", s.addItem()).Methods("POST")
	router.HandleFunc("/basket/update", s.updateQuantities()).Methods("POST")

	// Cloud Tasks calls this endpoint to reconcile baskets that could not be
	// deleted right after checkout
	router.HandleFunc("/api/basket/{basketUID}/cleanup", s.cleanupBasket()).Methods("PUT")
}

//go:embed templates
var templateFolder embed.FS
var (
	basketPageTemplate *template.Template
)

func init() {
	basketPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/basket.html"))
}

func (s webService) basketPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		ownerKey, setCookie := s.resolver.ResolveFromRequest(r, s.authenticator)
		if setCookie != nil {
			http.SetCookie(w, setCookie)
		}

		currentBasket, err := s.service.GetOrCreateBasketForOwner(c, ownerKey)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		products, err := s.catalog.ListProducts(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = basketPageTemplate.Execute(w, basketPageInfo{
			Basket:   currentBasket,
			Products: products,
		})
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s webService) addItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		ownerKey, setCookie := s.resolver.ResolveFromRequest(r, s.authenticator)
		if setCookie != nil {
			http.SetCookie(w, setCookie)
		}

		err := r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}
		productUID := r.Form.Get("productUid")

		product, err := s.catalog.GetProduct(c, productUID)
		if err != nil {
			// Unknown product: back to the basket page, as the original storefront does
			s.logger.Log(c, ownerKey, mylog.SeverityWarn, "Cannot add unknown product %s: %s", productUID, err)
			http.Redirect(w, r, "/basket", http.StatusSeeOther)
			return
		}

		currentBasket, err := s.service.AddItem(c, ownerKey, product.UID, product.Price)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		// Fire-and-forget reservation snapshot: outcome never affects this response
		s.dispatcher.Dispatch(c, s.queueChannel, newBasketSnapshot(currentBasket))

		http.Redirect(w, r, "/basket", http.StatusSeeOther)
	}
}

func (s webService) updateQuantities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		ownerKey, setCookie := s.resolver.ResolveFromRequest(r, s.authenticator)
		if setCookie != nil {
			http.SetCookie(w, setCookie)
		}

		err := r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		form := updateForm{}
		err = formcodec.NewDecoder().Decode(&form, r.Form)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		currentBasket, err := s.service.GetOrCreateBasketForOwner(c, ownerKey)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		_, err = s.service.SetQuantities(c, currentBasket.UID, form.quantities())
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		http.Redirect(w, r, "/basket", http.StatusSeeOther)
	}
}

func (s webService) cleanupBasket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		basketUID := mux.Vars(r)["basketUID"]

		s.logger.Log(c, basketUID, mylog.SeverityInfo, "Reconciliation: deleting leftover basket %s", basketUID)

		err := s.service.Delete(c, basketUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.EmptyResponse{})
	}
}

type basketPageInfo struct {
	Basket   Basket
	Products []catalog.Product
}

type updateForm struct {
	Items []itemQuantity `form:"items"`
}

type itemQuantity struct {
	UID      string `form:"uid"`
	Quantity int    `form:"quantity"`
}

func (f updateForm) quantities() map[string]int {
	result := map[string]int{}
	for _, item := range f.Items {
		result[item.UID] = item.Quantity
	}
	return result
}

// basketSnapshot is the reservation payload published to the order-items
// reservation queue. Delivery is not guaranteed.
type basketSnapshot struct {
	BasketUID string         `json:"basketUid"`
	OwnerKey  string         `json:"ownerKey"`
	Items     []snapshotLine `json:"items"`
	Total     int            `json:"total"`
	TakenAt   time.Time      `json:"takenAt"`
}

type snapshotLine struct {
	ProductUID string `json:"productId"`
	UnitPrice  int    `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
}

func newBasketSnapshot(b Basket) basketSnapshot {
	items := make([]snapshotLine, 0, len(b.Items))
	for _, line := range b.Items {
		items = append(items, snapshotLine{
			ProductUID: line.ProductUID,
			UnitPrice:  line.UnitPrice,
			Quantity:   line.Quantity,
		})
	}

	takenAt := b.CreatedAt
	if b.LastModified != nil {
		takenAt = *b.LastModified
	}

	return basketSnapshot{
		BasketUID: b.UID,
		OwnerKey:  b.OwnerKey,
		Items:     items,
		Total:     b.Total(),
		TakenAt:   takenAt,
	}
}
