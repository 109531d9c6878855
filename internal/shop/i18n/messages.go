package i18n

import (
	"fmt"

	"github.com/Lexv0lk/shop/internal/shop/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

type translations struct {
	uz string
	ru string
	en string
}

// Arguments are rendered with %s: the printer would otherwise group the
// digits of ids.
var errorMessages = map[domain.ErrorCode]translations{
	domain.CodeInternal: {
		uz: "Kutilmagan xatolik yuz berdi, iltimos qo'llab-quvvatlash xizmatiga murojaat qiling",
		ru: "Произошла непредвиденная ошибка, обратитесь в службу поддержки",
		en: "Unexpected error, please contact support",
	},
	domain.CodeCategoryNotFound: {
		uz: "%s raqamli kategoriya topilmadi",
		ru: "Категория %s не найдена",
		en: "Category %s not found",
	},
	domain.CodeUserNotFound: {
		uz: "%s raqamli foydalanuvchi topilmadi",
		ru: "Пользователь %s не найден",
		en: "User %s not found",
	},
	domain.CodeUserAlreadyExists: {
		uz: "%s foydalanuvchi nomi band",
		ru: "Имя пользователя %s уже занято",
		en: "Username %s is already taken",
	},
	domain.CodeInvalidFullname: {
		uz: "To'liq ism bo'sh bo'lmasligi kerak",
		ru: "Полное имя не должно быть пустым",
		en: "Full name must not be blank",
	},
	domain.CodeInvalidUsername: {
		uz: "Foydalanuvchi nomi kamida %s belgidan iborat bo'lishi kerak",
		ru: "Имя пользователя должно содержать не менее %s символов",
		en: "Username must be at least %s characters long",
	},
	domain.CodeInvalidCategoryName: {
		uz: "Kategoriya nomi bo'sh bo'lmasligi kerak",
		ru: "Название категории не должно быть пустым",
		en: "Category name must not be blank",
	},
	domain.CodeInvalidOrder: {
		uz: "Tartib raqami manfiy bo'lmasligi kerak: %s",
		ru: "Порядок не может быть отрицательным: %s",
		en: "Order must not be negative: %s",
	},
	domain.CodeInvalidLocalizedName: {
		uz: "Nom barcha tillarda to'ldirilishi kerak",
		ru: "Название должно быть заполнено на всех языках",
		en: "Name must be filled in every language",
	},
	domain.CodeProductNotFound: {
		uz: "%s raqamli mahsulot topilmadi",
		ru: "Товар %s не найден",
		en: "Product %s not found",
	},
	domain.CodeTransactionNotFound: {
		uz: "%s raqamli tranzaksiya topilmadi",
		ru: "Транзакция %s не найдена",
		en: "Transaction %s not found",
	},
	domain.CodeInsufficientBalance: {
		uz: "%s raqamli foydalanuvchi balansida mablag' yetarli emas",
		ru: "Недостаточно средств на балансе пользователя %s",
		en: "User %s has insufficient balance",
	},
	domain.CodeInsufficientStock: {
		uz: "%s raqamli mahsulot omborda yetarli emas: %s dona so'ralgan",
		ru: "Недостаточно товара %s на складе: запрошено %s",
		en: "Not enough stock of product %s: %s requested",
	},
	domain.CodeInvalidAmount: {
		uz: "Miqdor noto'g'ri",
		ru: "Некорректная сумма или количество",
		en: "Invalid amount",
	},
}

var messages = buildCatalog()

func buildCatalog() catalog.Catalog {
	builder := catalog.NewBuilder(catalog.Fallback(DefaultLanguage))

	for code, t := range errorMessages {
		key := code.Key()
		mustSet(builder, language.Uzbek, key, t.uz)
		mustSet(builder, language.Russian, key, t.ru)
		mustSet(builder, language.English, key, t.en)
	}

	return builder
}

func mustSet(builder *catalog.Builder, tag language.Tag, key string, msg string) {
	if err := builder.SetString(tag, key, msg); err != nil {
		panic(fmt.Sprintf("i18n: failed to register %s for %s: %v", key, tag, err))
	}
}

// ErrorMessage renders the message for code in tag's language.
func ErrorMessage(tag language.Tag, code domain.ErrorCode, args ...any) string {
	printer := message.NewPrinter(tag, message.Catalog(messages))

	rendered := make([]any, len(args))
	for i, arg := range args {
		rendered[i] = fmt.Sprint(arg)
	}

	return printer.Sprintf(code.Key(), rendered...)
}
