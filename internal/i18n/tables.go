package i18n

var fa = Table{
	"brand":           "buymina",
	"home":            "خانه",
	"categories":      "دسته‌بندی‌ها",
	"cart":            "سبد خرید",
	"admin":           "پنل مدیریت",
	"currency":        "تومان",
	"usd":             "دلار",
	"search":          "جستجو در کالکشن...",
	"addToCart":       "افزودن به سبد",
	"sizes":           "سایز",
	"colors":          "رنگ",
	"stock":           "موجودی",
	"total":           "مجموع کل",
	"checkout":        "پرداخت نهایی",
	"firstName":       "نام",
	"address":         "آدرس تحویل",
	"confirmOrder":    "تایید و ثبت سفارش",
	"successMsg":      "سفارش شما با موفقیت ثبت شد!",
	"adminLogin":      "ورود به بخش مدیریت",
	"passcode":        "رمز عبور",
	"passcodeHint":    "رمز دمو: 2025",
	"login":           "ورود",
	"logout":          "خروج",
	"dashboard":       "داشبورد",
	"products":        "محصولات",
	"orders":          "سفارشات",
	"noOrders":        "هنوز سفارشی ثبت نشده است",
	"emptyCart":       "سبد خرید شما خالی است",
	"all":             "همه",
	"jackets":         "ژاکت‌ها",
	"shoes":           "کفش‌ها",
	"accessories":     "اکسسوری‌ها",
	"clothing":        "لباس‌ها",
	"back":            "بازگشت",
	"backHome":        "بازگشت به خانه",
	"explore":         "مشاهده محصولات",
	"heroSubtitle":    "کالکشن جدید ۲۰۲۵ - بوتیک آینده",
	"wrongPasscode":   "رمز اشتباه است",
	"close":           "بستن",
	"remove":          "حذف",
	"statusPending":   "در انتظار",
	"statusApproved":  "تایید شده",
	"statusShipped":   "ارسال شده",
	"statusCompleted": "تکمیل شده",
	"footer":          "© 2025 buymina. تمامی حقوق محفوظ است.",
}

var en = Table{
	"brand":           "buymina",
	"home":            "Home",
	"categories":      "Categories",
	"cart":            "Shopping Cart",
	"admin":           "Admin Panel",
	"currency":        "IRT",
	"usd":             "USD",
	"search":          "Search collection...",
	"addToCart":       "Add to Cart",
	"sizes":           "Sizes",
	"colors":          "Colors",
	"stock":           "In stock",
	"total":           "Total Amount",
	"checkout":        "Checkout Now",
	"firstName":       "First Name",
	"address":         "Shipping Address",
	"confirmOrder":    "Confirm & Place Order",
	"successMsg":      "Order placed successfully!",
	"adminLogin":      "Secure Admin Login",
	"passcode":        "Passcode",
	"passcodeHint":    "Demo passcode: 2025",
	"login":           "Login",
	"logout":          "Logout",
	"dashboard":       "Dashboard",
	"products":        "Products",
	"orders":          "Orders",
	"noOrders":        "No orders yet",
	"emptyCart":       "Your cart is empty",
	"all":             "All",
	"jackets":         "Jackets",
	"shoes":           "Shoes",
	"accessories":     "Accessories",
	"clothing":        "Clothing",
	"back":            "Back",
	"backHome":        "Back to Home",
	"explore":         "Explore Catalog",
	"heroSubtitle":    "New Collection 2025 - The Future Boutique",
	"wrongPasscode":   "Incorrect passcode",
	"close":           "Close",
	"remove":          "Remove",
	"statusPending":   "Pending",
	"statusApproved":  "Approved",
	"statusShipped":   "Shipped",
	"statusCompleted": "Completed",
	"footer":          "© 2025 buymina. All rights reserved.",
}
