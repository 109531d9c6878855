package http

import (
	"time"

	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/Lexv0lk/shop/internal/shop/i18n"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

//region Requests

type createUserRequestBody struct {
	Fullname string `json:"fullname" binding:"required"`
	Username string `json:"username" binding:"required"`
}

type addBalanceRequestBody struct {
	UserID int64           `json:"userId" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

type createCategoryRequestBody struct {
	Name  string `json:"name" binding:"required"`
	Order int64  `json:"order"`
}

type updateCategoryRequestBody struct {
	Name  *string `json:"name"`
	Order *int64  `json:"order"`
}

type localizedNameBody struct {
	Uz string `json:"uz"`
	Ru string `json:"ru"`
	En string `json:"en"`
}

func (b localizedNameBody) toDomain() domain.LocalizedName {
	return domain.LocalizedName{Uz: b.Uz, Ru: b.Ru, En: b.En}
}

type createProductRequestBody struct {
	Name       localizedNameBody `json:"name"`
	Count      int64             `json:"count"`
	Price      decimal.Decimal   `json:"price"`
	CategoryID int64             `json:"categoryId" binding:"required"`
}

type updateProductRequestBody struct {
	Name       *localizedNameBody `json:"name"`
	Count      *int64             `json:"count"`
	Price      *decimal.Decimal   `json:"price"`
	CategoryID *int64             `json:"categoryId"`
}

func (b updateProductRequestBody) toDomain() domain.UpdateProductParams {
	params := domain.UpdateProductParams{
		Count:      b.Count,
		Price:      b.Price,
		CategoryID: b.CategoryID,
	}
	if b.Name != nil {
		name := b.Name.toDomain()
		params.Name = &name
	}

	return params
}

type buyItemBody struct {
	ProductID int64 `json:"productId"`
	Count     int64 `json:"count"`
}

type buyRequestBody struct {
	UserID int64         `json:"userId" binding:"required"`
	Items  []buyItemBody `json:"items" binding:"dive"`
}

func (b buyRequestBody) toDomain() domain.BuyRequest {
	items := make([]domain.BuyItem, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, domain.BuyItem{ProductID: item.ProductID, Count: item.Count})
	}

	return domain.BuyRequest{UserID: b.UserID, Items: items}
}

type pageQuery struct {
	Page int `form:"page" binding:"gte=0"`
	Size int `form:"size" binding:"gte=0"`
}

func (q pageQuery) toDomain() domain.Page {
	return domain.Page{Number: q.Page, Size: q.Size}
}

type searchQuery struct {
	Keyword string `form:"keyword"`
}

//endregion

//region Responses

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type pageResponse[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

func newPageResponse[E any, T any](page domain.PageResult[E], convert func(E) T) pageResponse[T] {
	items := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, convert(item))
	}

	return pageResponse[T]{
		Items: items,
		Page:  page.Number,
		Size:  page.Size,
		Total: page.Total,
	}
}

func convertAll[E any, T any](entities []E, convert func(E) T) []T {
	result := make([]T, 0, len(entities))
	for _, entity := range entities {
		result = append(result, convert(entity))
	}

	return result
}

type userResponse struct {
	ID        int64           `json:"id"`
	Fullname  string          `json:"fullname"`
	Username  string          `json:"username"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
}

func newUserResponse(user domain.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Fullname:  user.Fullname,
		Username:  user.Username,
		Balance:   user.Balance,
		CreatedAt: user.CreatedAt,
	}
}

type categoryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Order int64  `json:"order"`
}

func newCategoryResponse(category domain.Category) categoryResponse {
	return categoryResponse{
		ID:    category.ID,
		Name:  category.Name,
		Order: category.Order,
	}
}

type productResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Count      int64           `json:"count"`
	Price      decimal.Decimal `json:"price"`
	CategoryID int64           `json:"categoryId"`
}

func productConverter(tag language.Tag) func(domain.Product) productResponse {
	return func(product domain.Product) productResponse {
		return productResponse{
			ID:         product.ID,
			Name:       i18n.ResolveName(product.Name, tag),
			Count:      product.Count,
			Price:      product.Price,
			CategoryID: product.CategoryID,
		}
	}
}

type paymentResponse struct {
	ID     int64           `json:"id"`
	UserID int64           `json:"userId"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

func newPaymentResponse(payment domain.PaymentTransaction) paymentResponse {
	return paymentResponse{
		ID:     payment.ID,
		UserID: payment.UserID,
		Amount: payment.Amount,
		Date:   payment.Date,
	}
}

type topUpResponse struct {
	UserID    int64           `json:"userId"`
	PaymentID int64           `json:"paymentId"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
	Date      time.Time       `json:"date"`
}

func newTopUpResponse(result domain.TopUpResult) topUpResponse {
	return topUpResponse{
		UserID:    result.UserID,
		PaymentID: result.PaymentID,
		Amount:    result.Amount,
		Balance:   result.Balance,
		Date:      result.Date,
	}
}

type transactionItemResponse struct {
	ID            int64           `json:"id"`
	TransactionID int64           `json:"transactionId"`
	ProductID     int64           `json:"productId"`
	Count         int64           `json:"count"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

func newTransactionItemResponse(item domain.TransactionItem) transactionItemResponse {
	return transactionItemResponse{
		ID:            item.ID,
		TransactionID: item.TransactionID,
		ProductID:     item.ProductID,
		Count:         item.Count,
		UnitPrice:     item.UnitPrice,
		TotalAmount:   item.TotalAmount,
	}
}

type transactionResponse struct {
	ID          int64                     `json:"id"`
	UserID      int64                     `json:"userId"`
	TotalAmount decimal.Decimal           `json:"totalAmount"`
	Date        time.Time                 `json:"date"`
	Items       []transactionItemResponse `json:"items,omitempty"`
}

func newTransactionResponse(transaction domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		TotalAmount: transaction.TotalAmount,
		Date:        transaction.Date,
	}
}

func newPurchaseResponse(purchase domain.Purchase) transactionResponse {
	response := newTransactionResponse(purchase.Transaction)
	response.Items = convertAll(purchase.Items, newTransactionItemResponse)

	return response
}

//endregion
