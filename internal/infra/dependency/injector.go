// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finly/backend/config"
	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/application/usecase/asset"
	"github.com/finly/backend/internal/application/usecase/budgetplan"
	"github.com/finly/backend/internal/application/usecase/market"
	"github.com/finly/backend/internal/application/usecase/note"
	"github.com/finly/backend/internal/application/usecase/stock"
	"github.com/finly/backend/internal/application/usecase/transaction"
	"github.com/finly/backend/internal/application/usecase/wallet"
	"github.com/finly/backend/internal/infra/server/router"
	"github.com/finly/backend/internal/integration/entrypoint/controller"
	"github.com/finly/backend/internal/integration/marketdata"
	"github.com/finly/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	walletRepo := persistence.NewWalletRepository(db)
	stockRepo := persistence.NewStockRepository(db)
	assetRepo := persistence.NewAssetRepository(db)
	noteRepo := persistence.NewNoteRepository(db)
	budgetPlanRepo := persistence.NewBudgetPlanRepository(db)

	// Create market data provider and cache
	provider := marketdata.NewProvider(cfg.Market.RequestTimeout)
	quoteCache := newQuoteCache(&cfg.Redis)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, walletRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, walletRepo)
	transactionTotalsUseCase := transaction.NewGetTransactionTotalsUseCase(transactionRepo)

	// Create wallet use cases
	listWalletsUseCase := wallet.NewListWalletsUseCase(walletRepo)
	getWalletUseCase := wallet.NewGetWalletUseCase(walletRepo)
	createWalletUseCase := wallet.NewCreateWalletUseCase(walletRepo)
	updateWalletUseCase := wallet.NewUpdateWalletUseCase(walletRepo)
	deleteWalletUseCase := wallet.NewDeleteWalletUseCase(walletRepo)
	walletTotalsUseCase := wallet.NewGetWalletTotalsUseCase(walletRepo)
	transferMoneyUseCase := wallet.NewTransferMoneyUseCase(walletRepo)

	// Create stock use cases
	listStocksUseCase := stock.NewListStocksUseCase(stockRepo)
	getStockUseCase := stock.NewGetStockUseCase(stockRepo)
	purchaseStockUseCase := stock.NewPurchaseStockUseCase(stockRepo, walletRepo)
	sellStockUseCase := stock.NewSellStockUseCase(stockRepo, walletRepo)
	updateStockUseCase := stock.NewUpdateStockUseCase(stockRepo)
	deleteStockUseCase := stock.NewDeleteStockUseCase(stockRepo, walletRepo)
	getHoldingsUseCase := stock.NewGetHoldingsUseCase(stockRepo)

	// Create asset use cases
	listAssetsUseCase := asset.NewListAssetsUseCase(assetRepo)
	createAssetUseCase := asset.NewCreateAssetUseCase(assetRepo)
	updateAssetUseCase := asset.NewUpdateAssetUseCase(assetRepo)
	deleteAssetUseCase := asset.NewDeleteAssetUseCase(assetRepo)
	assetTotalsUseCase := asset.NewGetAssetTotalsUseCase(assetRepo)

	// Create note use cases
	listNotesUseCase := note.NewListNotesUseCase(noteRepo)
	createNoteUseCase := note.NewCreateNoteUseCase(noteRepo)
	updateNoteUseCase := note.NewUpdateNoteUseCase(noteRepo)
	deleteNoteUseCase := note.NewDeleteNoteUseCase(noteRepo)

	// Create budget plan use cases
	listBudgetPlansUseCase := budgetplan.NewListBudgetPlansUseCase(budgetPlanRepo)
	createBudgetPlanUseCase := budgetplan.NewCreateBudgetPlanUseCase(budgetPlanRepo)
	updateBudgetPlanUseCase := budgetplan.NewUpdateBudgetPlanUseCase(budgetPlanRepo)
	deleteBudgetPlanUseCase := budgetplan.NewDeleteBudgetPlanUseCase(budgetPlanRepo)

	// Create market data use cases
	cryptoQuoteUseCase := market.NewGetCryptoQuoteUseCase(provider, quoteCache, cfg.Market.CacheTTL)
	stockQuoteUseCase := market.NewGetStockQuoteUseCase(provider, quoteCache, cfg.Market.CacheTTL)
	goldQuoteUseCase := market.NewGetGoldQuoteUseCase(provider, quoteCache, cfg.Market.CacheTTL)
	marketOverviewUseCase := market.NewGetMarketOverviewUseCase(provider, quoteCache, cfg.Market.CacheTTL)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		transactionTotalsUseCase,
	)

	walletController := controller.NewWalletController(
		listWalletsUseCase,
		getWalletUseCase,
		createWalletUseCase,
		updateWalletUseCase,
		deleteWalletUseCase,
		walletTotalsUseCase,
		transferMoneyUseCase,
	)

	stockController := controller.NewStockController(
		listStocksUseCase,
		getStockUseCase,
		purchaseStockUseCase,
		sellStockUseCase,
		updateStockUseCase,
		deleteStockUseCase,
		getHoldingsUseCase,
	)

	assetController := controller.NewAssetController(
		listAssetsUseCase,
		createAssetUseCase,
		updateAssetUseCase,
		deleteAssetUseCase,
		assetTotalsUseCase,
	)

	noteController := controller.NewNoteController(
		listNotesUseCase,
		createNoteUseCase,
		updateNoteUseCase,
		deleteNoteUseCase,
	)

	budgetPlanController := controller.NewBudgetPlanController(
		listBudgetPlansUseCase,
		createBudgetPlanUseCase,
		updateBudgetPlanUseCase,
		deleteBudgetPlanUseCase,
	)

	marketDataController := controller.NewMarketDataController(
		cryptoQuoteUseCase,
		stockQuoteUseCase,
		goldQuoteUseCase,
		marketOverviewUseCase,
	)

	r := router.NewRouter(
		healthController,
		transactionController,
		walletController,
		stockController,
		assetController,
		noteController,
		budgetPlanController,
		marketDataController,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}

// newQuoteCache builds the Redis quote cache. A bad Redis configuration is
// not fatal; quote lookups just skip the cache.
func newQuoteCache(cfg *config.RedisConfig) adapter.QuoteCache {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, quote caching disabled", "error", err)
		return nil
	}

	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	return marketdata.NewRedisQuoteCache(redis.NewClient(opts))
}
