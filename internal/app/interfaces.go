package app

import (
	"github.com/gymwear/storeadmin/config"
	"github.com/gymwear/storeadmin/internal/console"
	"github.com/gymwear/storeadmin/internal/dashboard"
	"github.com/gymwear/storeadmin/internal/domain"
	"github.com/gymwear/storeadmin/internal/identity"
	"github.com/gymwear/storeadmin/internal/restclient"
)

// ConfigProvider provides access to application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// ClientProvider provides access to the resource clients
type ClientProvider interface {
	Categories() *restclient.Resource[domain.Category]
	Products() *restclient.Resource[domain.Product]
	Users() *restclient.Resource[domain.User]
	Orders() *restclient.Orders
}

// NotifierProvider provides access to the notification publisher
type NotifierProvider interface {
	Notifier() *console.Notifier
}

// IdentityProvider provides access to the current identity
type IdentityProvider interface {
	Auth() identity.Authenticator
}

// ScreenProvider provides access to the screens and the dashboard
type ScreenProvider interface {
	CategoryScreen() *console.Screen[domain.Category]
	ProductScreen() *console.Screen[domain.Product]
	UserScreen() *console.Screen[domain.User]
	OrderScreen() *console.Screen[domain.Order]
	Dashboard() *dashboard.Aggregator
}

// AppContext aggregates everything the web shell needs
type AppContext interface {
	ConfigProvider
	ClientProvider
	NotifierProvider
	IdentityProvider
	ScreenProvider
}
