package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Czech

	// Navigation chrome
	message.SetString(lang, "nav.dashboard", "Přehled")
	message.SetString(lang, "nav.portfolio", "Portfolio")
	message.SetString(lang, "nav.transactions", "Transakce")
	message.SetString(lang, "nav.settings", "Nastavení")
	message.SetString(lang, "nav.logout", "Odhlásit se")
	message.SetString(lang, "nav.menu", "Menu")
	message.SetString(lang, "nav.close", "Zavřít")
	message.SetString(lang, "nav.toggle", "Přepnout navigaci")

	// Landing page
	message.SetString(lang, "public.sign_in", "Přihlásit se")
	message.SetString(lang, "landing.title", "Sledujte své investice")
	message.SetString(lang, "landing.headline", "Všechny pozice v jednom přehledu")
	message.SetString(lang, "landing.tagline", "Hodnota portfolia, rozložení aktiv a obchody na jednom místě.")
	message.SetString(lang, "landing.get_started", "Začít")
	message.SetString(lang, "landing.feature.tracking", "Průběžné sledování portfolia")
	message.SetString(lang, "landing.feature.allocation", "Rozložení aktiv na první pohled")
	message.SetString(lang, "landing.feature.history", "Kompletní historie transakcí")

	// Login
	message.SetString(lang, "login.title", "Přihlášení")
	message.SetString(lang, "login.heading", "Přihlaste se ke svému účtu")
	message.SetString(lang, "login.email", "E-mail")
	message.SetString(lang, "login.password", "Heslo")
	message.SetString(lang, "login.submit", "Přihlásit se")
	message.SetString(lang, "login.error.invalid", "Neplatný e-mail nebo heslo.")
	message.SetString(lang, "login.error.rate_limited", "Příliš mnoho pokusů o přihlášení. Zkuste to za chvíli.")
	message.SetString(lang, "login.error.unavailable", "Přihlášení je dočasně nedostupné.")

	// Dashboard
	message.SetString(lang, "dashboard.title", "Přehled")
	message.SetString(lang, "dashboard.total_value", "Celková hodnota portfolia")
	message.SetString(lang, "dashboard.daily_change", "Dnešní změna")
	message.SetString(lang, "dashboard.total_gain", "Celkový zisk/ztráta")
	message.SetString(lang, "dashboard.allocation", "Rozložení aktiv")
	message.SetString(lang, "dashboard.recent_transactions", "Poslední transakce")
	message.SetString(lang, "dashboard.column.asset", "Třída aktiv")
	message.SetString(lang, "dashboard.column.value", "Hodnota")
	message.SetString(lang, "dashboard.column.share", "Podíl")
	message.SetString(lang, "dashboard.view_all", "Zobrazit vše")

	// Portfolio
	message.SetString(lang, "portfolio.title", "Portfolio")
	message.SetString(lang, "portfolio.column.symbol", "Symbol")
	message.SetString(lang, "portfolio.column.name", "Název")
	message.SetString(lang, "portfolio.column.shares", "Počet akcií")
	message.SetString(lang, "portfolio.column.avg_price", "Prům. cena")
	message.SetString(lang, "portfolio.column.current_price", "Aktuální cena")
	message.SetString(lang, "portfolio.column.market_value", "Tržní hodnota")
	message.SetString(lang, "portfolio.column.gain_loss", "Zisk/ztráta")
	message.SetString(lang, "portfolio.column.gain_loss_pct", "Zisk/ztráta %")
	message.SetString(lang, "portfolio.page_size", "Řádků na stránku")
	message.SetString(lang, "portfolio.page_status", "Strana %d z %d")
	message.SetString(lang, "portfolio.previous", "Předchozí")
	message.SetString(lang, "portfolio.next", "Další")
	message.SetString(lang, "portfolio.empty", "Zatím žádné pozice.")

	// Transactions
	message.SetString(lang, "transactions.title", "Transakce")
	message.SetString(lang, "transactions.add", "Přidat transakci")
	message.SetString(lang, "transactions.column.date", "Datum")
	message.SetString(lang, "transactions.column.type", "Typ")
	message.SetString(lang, "transactions.column.symbol", "Symbol")
	message.SetString(lang, "transactions.column.shares", "Počet akcií")
	message.SetString(lang, "transactions.column.price", "Cena")
	message.SetString(lang, "transactions.column.total", "Celkem")
	message.SetString(lang, "transactions.type.buy", "Nákup")
	message.SetString(lang, "transactions.type.sell", "Prodej")
	message.SetString(lang, "transactions.submit", "Přidat transakci")
	message.SetString(lang, "transactions.error.type", "Vyberte nákup nebo prodej.")
	message.SetString(lang, "transactions.error.symbol", "Zadejte symbol o 1 až 10 písmenech.")
	message.SetString(lang, "transactions.error.shares", "Počet akcií musí být kladné číslo.")
	message.SetString(lang, "transactions.error.price", "Cena musí být kladné číslo.")
	message.SetString(lang, "transactions.error.date", "Zadejte datum ve formátu RRRR-MM-DD.")
	message.SetString(lang, "transactions.notice.added", "Transakce byla zaznamenána.")

	// Settings
	message.SetString(lang, "settings.title", "Nastavení")
	message.SetString(lang, "settings.preferences", "Předvolby")
	message.SetString(lang, "settings.dark_mode", "Tmavý režim")
	message.SetString(lang, "settings.email_notifications", "E-mailová upozornění")
	message.SetString(lang, "settings.currency", "Zobrazovaná měna")
	message.SetString(lang, "settings.save", "Uložit předvolby")
	message.SetString(lang, "settings.api.title", "API brokera")
	message.SetString(lang, "settings.api.key", "API klíč")
	message.SetString(lang, "settings.api.secret", "API tajemství")
	message.SetString(lang, "settings.api.save", "Uložit nastavení API")
	message.SetString(lang, "settings.error.currency", "Vyberte podporovanou měnu.")
	message.SetString(lang, "settings.error.api_key", "Zadejte API klíč i tajemství.")
	message.SetString(lang, "settings.notice.saved", "Předvolby byly uloženy.")
	message.SetString(lang, "settings.notice.api_saved", "Nastavení API bylo uloženo.")

	// Errors
	message.SetString(lang, "error.not_found.title", "Stránka nenalezena")
	message.SetString(lang, "error.forbidden.title", "Přístup odepřen")
	message.SetString(lang, "error.server.title", "Něco se pokazilo")
	message.SetString(lang, "error.back_to_dashboard", "Zpět na přehled")
	message.SetString(lang, "error.unavailable", "Tato stránka je dočasně nedostupná.")
	message.SetString(lang, "error.invalid_input", "Požadavek nelze zpracovat.")
}
