package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/eshopweb/storefront/lib/myhttpclient"
	"github.com/eshopweb/storefront/lib/mypubsub"
	"github.com/eshopweb/storefront/lib/myqueue"
	"github.com/eshopweb/storefront/lib/mystore"
	"github.com/eshopweb/storefront/lib/mytime"
	"github.com/eshopweb/storefront/lib/myuuid"
	"github.com/eshopweb/storefront/services/basket"
	"github.com/eshopweb/storefront/services/catalog"
	"github.com/eshopweb/storefront/services/checkout"
	"github.com/eshopweb/storefront/services/identity"
	"github.com/eshopweb/storefront/services/notify"
	"github.com/eshopweb/storefront/services/ordering"
)

const defaultReservationQueue = "orderitemsreserver"

func main() {
	c := context.Background()

	router := mux.NewRouter()

	productStore, productStoreCleanup, err := mystore.New[catalog.Product](c)
	if err != nil {
		log.Fatalf("Error creating product store: %s", err)
	}
	defer productStoreCleanup()

	basketStore, basketStoreCleanup, err := mystore.New[basket.Basket](c)
	if err != nil {
		log.Fatalf("Error creating basket store: %s", err)
	}
	defer basketStoreCleanup()

	orderStore, orderStoreCleanup, err := mystore.New[ordering.Order](c)
	if err != nil {
		log.Fatalf("Error creating order store: %s", err)
	}
	defer orderStoreCleanup()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	catalogService := catalog.NewService(productStore)
	err = catalogService.Seed(c)
	if err != nil {
		log.Fatalf("Error seeding catalog: %s", err)
	}

	basketService := basket.NewService(basketStore, nower, uuider)
	orderService := ordering.NewService(orderStore, basketStore, catalogService, nower, uuider)

	resolver := identity.NewResolver(nower, uuider)
	authenticator := identity.NewIAPAuthenticator()

	dispatcher := notify.NewDispatcher()
	orderChannel := notify.NewWebhookChannel(myhttpclient.New(), os.Getenv("ORDER_WEBHOOK_URL"))
	queueChannel := notify.NewQueueChannel(reservationQueueName(), mypubsub.New)

	basketWebService := basket.NewWebService(basketService, catalogService, resolver, authenticator, dispatcher, queueChannel)
	basketWebService.RegisterEndpoints(c, router)

	checkoutWebService := checkout.NewWebService(basketService, orderService, dispatcher, orderChannel, queue, resolver, authenticator)
	checkoutWebService.RegisterEndpoints(c, router)

	startWebServerBlocking(router)
}

func reservationQueueName() string {
	queueName := os.Getenv("RESERVATION_QUEUE")
	if queueName == "" {
		queueName = defaultReservationQueue
	}
	return queueName
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
