package app

import (
	"os"
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gymwear/storeadmin/config"
	"github.com/gymwear/storeadmin/internal/console"
	"github.com/gymwear/storeadmin/internal/dashboard"
	"github.com/gymwear/storeadmin/internal/domain"
	"github.com/gymwear/storeadmin/internal/identity"
	"github.com/gymwear/storeadmin/internal/restclient"
	"github.com/gymwear/storeadmin/internal/screens"
)

// Application owns the console's long-lived pieces: the shared REST client,
// the four resource clients, the screens, the dashboard aggregator, the
// identity stub, and the notification bus.
type Application struct {
	appConfig *config.AppConfig

	rest       *restclient.Client
	categories *restclient.Resource[domain.Category]
	products   *restclient.Resource[domain.Product]
	users      *restclient.Resource[domain.User]
	orders     *restclient.Orders

	bus      EventBus.Bus
	notifier *console.Notifier
	auth     identity.Authenticator

	categoryScreen *console.Screen[domain.Category]
	productScreen  *console.Screen[domain.Product]
	userScreen     *console.Screen[domain.User]
	orderScreen    *console.Screen[domain.Order]
	aggregator     *dashboard.Aggregator
}

// Ensure Application implements all provider interfaces
var (
	_ ConfigProvider   = (*Application)(nil)
	_ ClientProvider   = (*Application)(nil)
	_ NotifierProvider = (*Application)(nil)
	_ IdentityProvider = (*Application)(nil)
	_ ScreenProvider   = (*Application)(nil)
	_ AppContext       = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

// Init sets up the global logger and wires clients, screens, and the
// dashboard aggregator.
func (a *Application) Init() {
	cfg := a.appConfig

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}
	zap.ReplaceGlobals(logger)

	a.rest = restclient.New(cfg.API.BaseURL, time.Duration(cfg.API.Timeout)*time.Second)
	zap.S().Infof("using backend %s", a.rest.BaseURL())

	a.categories = restclient.NewResource[domain.Category](a.rest, "categories")
	a.products = restclient.NewResource[domain.Product](a.rest, "products")
	a.users = restclient.NewResource[domain.User](a.rest, "users")
	a.orders = restclient.NewOrders(a.rest)

	a.bus = EventBus.New()
	a.notifier = console.NewNotifier(a.bus)
	a.auth = identity.NewStub()

	a.categoryScreen = screens.Categories(a.categories, a.notifier)
	a.productScreen = screens.Products(a.products, a.categories, a.notifier)
	a.userScreen = screens.Users(a.users, a.notifier)
	a.orderScreen = screens.Orders(a.orders, a.notifier)
	a.aggregator = dashboard.NewAggregator(a.categories, a.products, a.users, a.orders)
}

func (a *Application) Categories() *restclient.Resource[domain.Category] { return a.categories }
func (a *Application) Products() *restclient.Resource[domain.Product]   { return a.products }
func (a *Application) Users() *restclient.Resource[domain.User]         { return a.users }
func (a *Application) Orders() *restclient.Orders                       { return a.orders }

func (a *Application) Notifier() *console.Notifier { return a.notifier }
func (a *Application) Auth() identity.Authenticator { return a.auth }

func (a *Application) CategoryScreen() *console.Screen[domain.Category] { return a.categoryScreen }
func (a *Application) ProductScreen() *console.Screen[domain.Product]   { return a.productScreen }
func (a *Application) UserScreen() *console.Screen[domain.User]         { return a.userScreen }
func (a *Application) OrderScreen() *console.Screen[domain.Order]       { return a.orderScreen }
func (a *Application) Dashboard() *dashboard.Aggregator                 { return a.aggregator }

// Release flushes application resources.
func (a *Application) Release() {
	_ = zap.L().Sync()
}
