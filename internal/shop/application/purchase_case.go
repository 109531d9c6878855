package application

import (
	"context"

	"github.com/Lexv0lk/shop/internal/pkg/database"
	"github.com/Lexv0lk/shop/internal/pkg/logging"
	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type PurchaseCase struct {
	db           database.Querier
	txManager    database.TxManager
	users        domain.UserRepository
	products     domain.ProductRepository
	transactions domain.TransactionRepository
	items        domain.TransactionItemRepository
	logger       logging.Logger
}

func NewPurchaseCase(
	db database.Querier,
	txManager database.TxManager,
	users domain.UserRepository,
	products domain.ProductRepository,
	transactions domain.TransactionRepository,
	items domain.TransactionItemRepository,
	logger logging.Logger,
) *PurchaseCase {
	return &PurchaseCase{
		db:           db,
		txManager:    txManager,
		users:        users,
		products:     products,
		transactions: transactions,
		items:        items,
		logger:       logger,
	}
}

type pricedLine struct {
	productID int64
	count     int64
	unitPrice decimal.Decimal
	total     decimal.Decimal
}

// ProcessBuy charges the user for every requested line in one transaction.
// The user row is locked first and the products after it in ascending id
// order, so concurrent purchases always acquire locks in the same order.
func (pc *PurchaseCase) ProcessBuy(ctx context.Context, request domain.BuyRequest) (domain.Purchase, error) {
	if err := request.Validate(); err != nil {
		return domain.Purchase{}, err
	}

	var purchase domain.Purchase

	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		user, err := pc.users.FindActiveForUpdate(ctx, executor, request.UserID)
		if err != nil {
			return err
		}

		products, err := pc.products.LockActive(ctx, executor, requestedProductIDs(request.Items))
		if err != nil {
			return err
		}

		lines, total, err := priceLines(request.Items, products)
		if err != nil {
			return err
		}

		if user.Balance.LessThan(total) {
			return domain.NewInsufficientBalanceError(user.ID)
		}

		purchase, err = pc.commitPurchase(ctx, executor, user.ID, lines, total)
		return err
	})
	if err != nil {
		return domain.Purchase{}, err
	}

	pc.logger.Info("purchase committed",
		"user_id", request.UserID,
		"transaction_id", purchase.Transaction.ID,
		"total", purchase.Transaction.TotalAmount.String(),
	)

	return purchase, nil
}

func (pc *PurchaseCase) commitPurchase(
	ctx context.Context,
	executor database.QueryExecuter,
	userID int64,
	lines []pricedLine,
	total decimal.Decimal,
) (domain.Purchase, error) {
	transaction, err := pc.transactions.Save(ctx, executor, domain.Transaction{
		UserID:      userID,
		TotalAmount: total,
	})
	if err != nil {
		return domain.Purchase{}, err
	}

	items := make([]domain.TransactionItem, 0, len(lines))
	for _, line := range lines {
		if err = pc.products.DecreaseStock(ctx, executor, line.productID, line.count); err != nil {
			return domain.Purchase{}, err
		}

		item, err := pc.items.Save(ctx, executor, domain.TransactionItem{
			TransactionID: transaction.ID,
			ProductID:     line.productID,
			Count:         line.count,
			UnitPrice:     line.unitPrice,
			TotalAmount:   line.total,
		})
		if err != nil {
			return domain.Purchase{}, err
		}

		items = append(items, item)
	}

	if err = pc.users.DecreaseBalance(ctx, executor, userID, total); err != nil {
		return domain.Purchase{}, err
	}

	return domain.Purchase{
		Transaction: transaction,
		Items:       items,
	}, nil
}

// priceLines validates the request in its own order against the locked
// products: count, then product, then stock for each line. Stock is tracked
// across lines so a product listed twice cannot oversell.
func priceLines(items []domain.BuyItem, locked []domain.Product) ([]pricedLine, decimal.Decimal, error) {
	byID := make(map[int64]domain.Product, len(locked))
	remaining := make(map[int64]int64, len(locked))
	for _, product := range locked {
		byID[product.ID] = product
		remaining[product.ID] = product.Count
	}

	lines := make([]pricedLine, 0, len(items))
	total := decimal.Zero

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, decimal.Zero, err
		}

		product, ok := byID[item.ProductID]
		if !ok {
			return nil, decimal.Zero, domain.NewProductNotFoundError(item.ProductID)
		}

		if remaining[item.ProductID] < item.Count {
			return nil, decimal.Zero, domain.NewInsufficientStockError(item.ProductID, item.Count)
		}
		remaining[item.ProductID] -= item.Count

		lineTotal := domain.LineTotal(product.Price, item.Count)
		lines = append(lines, pricedLine{
			productID: item.ProductID,
			count:     item.Count,
			unitPrice: product.Price,
			total:     lineTotal,
		})
		total = total.Add(lineTotal)
	}

	return lines, total, nil
}

func requestedProductIDs(items []domain.BuyItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))

	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	return ids
}

// GetBuyHistory lists the user's purchases newest first. Lines are loaded
// for exactly the listed transactions, so a purchase committed between the
// two reads is either absent or complete.
func (pc *PurchaseCase) GetBuyHistory(ctx context.Context, userID int64) ([]domain.Purchase, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var exists bool
	var transactions []domain.Transaction

	group.Go(func() error {
		var err error
		exists, err = pc.users.Exists(groupCtx, pc.db, userID)
		return err
	})

	group.Go(func() error {
		var err error
		transactions, err = pc.transactions.ListActiveByUser(groupCtx, pc.db, userID)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if !exists {
		return nil, domain.NewUserNotFoundError(userID)
	}

	if len(transactions) == 0 {
		return []domain.Purchase{}, nil
	}

	ids := make([]int64, 0, len(transactions))
	for _, transaction := range transactions {
		ids = append(ids, transaction.ID)
	}

	items, err := pc.items.ListActiveByTransactions(ctx, pc.db, ids)
	if err != nil {
		return nil, err
	}

	return assemblePurchases(transactions, items), nil
}

func assemblePurchases(transactions []domain.Transaction, items []domain.TransactionItem) []domain.Purchase {
	itemsByTransaction := make(map[int64][]domain.TransactionItem, len(transactions))
	for _, item := range items {
		itemsByTransaction[item.TransactionID] = append(itemsByTransaction[item.TransactionID], item)
	}

	purchases := make([]domain.Purchase, 0, len(transactions))
	for _, transaction := range transactions {
		purchases = append(purchases, domain.Purchase{
			Transaction: transaction,
			Items:       itemsByTransaction[transaction.ID],
		})
	}

	return purchases
}

func (pc *PurchaseCase) GetTransactionItems(ctx context.Context, transactionID int64) ([]domain.TransactionItem, error) {
	if _, err := pc.transactions.FindActive(ctx, pc.db, transactionID); err != nil {
		return nil, err
	}

	return pc.items.ListActiveByTransaction(ctx, pc.db, transactionID)
}

func (pc *PurchaseCase) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return pc.transactions.ListActiveByDate(ctx, pc.db)
}
