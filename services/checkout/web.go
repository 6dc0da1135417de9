package checkout

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/eshopweb/storefront/lib/mycontext"
	"github.com/eshopweb/storefront/lib/myerrors"
	"github.com/eshopweb/storefront/lib/myhttp"
	"github.com/eshopweb/storefront/lib/mylog"
	"github.com/eshopweb/storefront/lib/myqueue"
	"github.com/eshopweb/storefront/services/basket"
	"github.com/eshopweb/storefront/services/identity"
	"github.com/eshopweb/storefront/services/notify"
	"github.com/eshopweb/storefront/services/ordering"
)

type webService struct {
	service       *service
	resolver      *identity.Resolver
	authenticator identity.Authenticator
	logger        mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(baskets basket.Service, orders ordering.Service, dispatcher *notify.Dispatcher, orderChannel notify.Channel, queuer myqueue.TaskQueuer, resolver *identity.Resolver, authenticator identity.Authenticator) *webService {
	logger := mylog.New("checkout")
	return &webService{
		service:       newService(baskets, orders, dispatcher, orderChannel, queuer, logger),
		resolver:      resolver,
		authenticator: authenticator,
		logger:        logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/checkout", s.checkoutPage()).Methods("GET")
	router.HandleFunc("/checkout", s.checkoutSubmit()).Methods("POST")
	router.HandleFunc("/checkout/success/{orderUID}", s.checkoutSuccessPage()).Methods("GET")
}

//go:embed templates
var templateFolder embed.FS
var (
	checkoutPageTemplate *template.Template
	successPageTemplate  *template.Template
)

func init() {
	checkoutPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/checkout.html"))
	successPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/success.html"))
}

func (s webService) checkoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		ownerKey, setCookie := s.resolver.ResolveFromRequest(r, s.authenticator)
		if setCookie != nil {
			http.SetCookie(w, setCookie)
		}

		currentBasket, err := s.service.baskets.GetOrCreateBasketForOwner(c, ownerKey)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = checkoutPageTemplate.Execute(w, checkoutPageInfo{
			Basket: currentBasket,
			ShipTo: defaultShippingAddress,
		})
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s webService) checkoutSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		ownerKey, setCookie := s.resolver.ResolveFromRequest(r, s.authenticator)
		if setCookie != nil {
			http.SetCookie(w, setCookie)
		}

		form, err := parseCheckoutForm(r)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		order, err := s.service.checkout(c, ownerKey, form.adjustments(), form.shippingAddress())
		if err != nil {
			if errors.Is(err, ordering.ErrEmptyBasket) {
				// Expected business outcome: back to the basket page
				s.logger.Log(c, ownerKey, mylog.SeverityWarn, "Checkout attempted on empty basket for owner %s", ownerKey)
				http.Redirect(w, r, "/basket", http.StatusSeeOther)
				return
			}
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/checkout/success/%s", order.UID), http.StatusSeeOther)
	}
}

func (s webService) checkoutSuccessPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		orderUID := mux.Vars(r)["orderUID"]

		order, err := s.service.orders.GetOrderByUID(c, orderUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = successPageTemplate.Execute(w, order)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

type checkoutPageInfo struct {
	Basket basket.Basket
	ShipTo ordering.Address
}

var defaultShippingAddress = ordering.Address{
	Street:  "123 Main St.",
	City:    "Kent",
	State:   "OH",
	Country: "United States",
	ZipCode: "44240",
}
