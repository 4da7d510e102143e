package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Navigation chrome
	message.SetString(lang, "nav.dashboard", "Dashboard")
	message.SetString(lang, "nav.portfolio", "Portfolio")
	message.SetString(lang, "nav.transactions", "Transactions")
	message.SetString(lang, "nav.settings", "Settings")
	message.SetString(lang, "nav.logout", "Sign out")
	message.SetString(lang, "nav.menu", "Menu")
	message.SetString(lang, "nav.close", "Close")
	message.SetString(lang, "nav.toggle", "Toggle navigation")

	// Landing page
	message.SetString(lang, "public.sign_in", "Sign In")
	message.SetString(lang, "landing.title", "Track your investments")
	message.SetString(lang, "landing.headline", "Every holding, one dashboard")
	message.SetString(lang, "landing.tagline", "Follow your portfolio value, allocation, and trades in one place.")
	message.SetString(lang, "landing.get_started", "Get Started")
	message.SetString(lang, "landing.feature.tracking", "Real-time portfolio tracking")
	message.SetString(lang, "landing.feature.allocation", "Asset allocation at a glance")
	message.SetString(lang, "landing.feature.history", "Complete transaction history")

	// Login
	message.SetString(lang, "login.title", "Sign in")
	message.SetString(lang, "login.heading", "Sign in to your account")
	message.SetString(lang, "login.email", "Email")
	message.SetString(lang, "login.password", "Password")
	message.SetString(lang, "login.submit", "Sign in")
	message.SetString(lang, "login.error.invalid", "Invalid email or password.")
	message.SetString(lang, "login.error.rate_limited", "Too many sign-in attempts. Try again in a moment.")
	message.SetString(lang, "login.error.unavailable", "Sign-in is temporarily unavailable.")

	// Dashboard
	message.SetString(lang, "dashboard.title", "Dashboard")
	message.SetString(lang, "dashboard.total_value", "Total portfolio value")
	message.SetString(lang, "dashboard.daily_change", "Today's change")
	message.SetString(lang, "dashboard.total_gain", "Total gain/loss")
	message.SetString(lang, "dashboard.allocation", "Asset allocation")
	message.SetString(lang, "dashboard.recent_transactions", "Recent transactions")
	message.SetString(lang, "dashboard.column.asset", "Asset class")
	message.SetString(lang, "dashboard.column.value", "Value")
	message.SetString(lang, "dashboard.column.share", "Share")
	message.SetString(lang, "dashboard.view_all", "View all")

	// Portfolio
	message.SetString(lang, "portfolio.title", "Portfolio")
	message.SetString(lang, "portfolio.column.symbol", "Symbol")
	message.SetString(lang, "portfolio.column.name", "Name")
	message.SetString(lang, "portfolio.column.shares", "Shares")
	message.SetString(lang, "portfolio.column.avg_price", "Avg. price")
	message.SetString(lang, "portfolio.column.current_price", "Current price")
	message.SetString(lang, "portfolio.column.market_value", "Market value")
	message.SetString(lang, "portfolio.column.gain_loss", "Gain/loss")
	message.SetString(lang, "portfolio.column.gain_loss_pct", "Gain/loss %")
	message.SetString(lang, "portfolio.page_size", "Rows per page")
	message.SetString(lang, "portfolio.page_status", "Page %d of %d")
	message.SetString(lang, "portfolio.previous", "Previous")
	message.SetString(lang, "portfolio.next", "Next")
	message.SetString(lang, "portfolio.empty", "No holdings yet.")

	// Transactions
	message.SetString(lang, "transactions.title", "Transactions")
	message.SetString(lang, "transactions.add", "Add transaction")
	message.SetString(lang, "transactions.column.date", "Date")
	message.SetString(lang, "transactions.column.type", "Type")
	message.SetString(lang, "transactions.column.symbol", "Symbol")
	message.SetString(lang, "transactions.column.shares", "Shares")
	message.SetString(lang, "transactions.column.price", "Price")
	message.SetString(lang, "transactions.column.total", "Total")
	message.SetString(lang, "transactions.type.buy", "Buy")
	message.SetString(lang, "transactions.type.sell", "Sell")
	message.SetString(lang, "transactions.submit", "Add transaction")
	message.SetString(lang, "transactions.error.type", "Choose buy or sell.")
	message.SetString(lang, "transactions.error.symbol", "Enter a ticker symbol of 1 to 10 letters.")
	message.SetString(lang, "transactions.error.shares", "Shares must be a positive number.")
	message.SetString(lang, "transactions.error.price", "Price must be a positive number.")
	message.SetString(lang, "transactions.error.date", "Enter a date as YYYY-MM-DD.")
	message.SetString(lang, "transactions.notice.added", "Transaction recorded.")

	// Settings
	message.SetString(lang, "settings.title", "Settings")
	message.SetString(lang, "settings.preferences", "Preferences")
	message.SetString(lang, "settings.dark_mode", "Dark mode")
	message.SetString(lang, "settings.email_notifications", "Email notifications")
	message.SetString(lang, "settings.currency", "Display currency")
	message.SetString(lang, "settings.save", "Save preferences")
	message.SetString(lang, "settings.api.title", "Broker API")
	message.SetString(lang, "settings.api.key", "API key")
	message.SetString(lang, "settings.api.secret", "API secret")
	message.SetString(lang, "settings.api.save", "Save API settings")
	message.SetString(lang, "settings.error.currency", "Choose a supported currency.")
	message.SetString(lang, "settings.error.api_key", "Enter both the API key and secret.")
	message.SetString(lang, "settings.notice.saved", "Preferences saved.")
	message.SetString(lang, "settings.notice.api_saved", "API settings saved.")

	// Errors
	message.SetString(lang, "error.not_found.title", "Page not found")
	message.SetString(lang, "error.forbidden.title", "Access denied")
	message.SetString(lang, "error.server.title", "Something went wrong")
	message.SetString(lang, "error.back_to_dashboard", "Back to dashboard")
	message.SetString(lang, "error.unavailable", "This page is temporarily unavailable.")
	message.SetString(lang, "error.invalid_input", "The request could not be processed.")
}
