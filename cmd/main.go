package main

import (
	"github.com/productsapp/orders-svc/internal/app"
	"github.com/productsapp/orders-svc/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
