package reply

// MaxCategoryPicks caps the product bullets in a category browse reply.
const MaxCategoryPicks = 6

const (
	DefaultBrandName = "Victory Furniture"

	DefaultFacebookURL  = "https://www.facebook.com/people/Victory-Furniture-Ke/61562878287913/"
	DefaultInstagramURL = "https://www.instagram.com/victory_furniture_ke/"
)

// DefaultSuggestedCategories is listed by the fallback reply.
var DefaultSuggestedCategories = []string{"Dining", "Bedroom", "Home Decor", "Outdoor", "Office"}

// DefaultSocialLinks closes the branch directory.
var DefaultSocialLinks = []SocialLink{
	{Name: "Facebook", URL: DefaultFacebookURL},
	{Name: "Instagram", URL: DefaultInstagramURL},
}

// Reply templates
const (
	tmplGreeting = "Hi there! 👋 Welcome to %s. " +
		"Tell me what you’re shopping for—dining sets, bedroom pieces, decor, or outdoor comfort—and I’ll show you great options."
	tmplAboutFallback = "We’re %s—bringing style, comfort, and value to every room in your home."
	tmplAbout         = "%s Learn more here: %s"
	tmplCategoryList  = "You can browse by category: %s."
	tmplBranch        = "Hmm… I’m not sure about that one yet, but our team in %s can help. " +
		"Find them at %s — call %s. They’ll be happy to assist!"
	tmplCategoryPicks = "Lovely choice! Here are popular picks in %s:\n%s%s"
	tmplPickLine      = "• %s — %s"
	tmplMorePicks     = " (+%d more on our site)"
	tmplProduct       = "You’ll love our **%s**. %s%s See more: %s"
	tmplPrice         = " Price: %s."
	tmplLink          = "<a href='%s' target='_blank' rel='noopener'>%s</a>"
	tmplSocialLink    = "🌐 <a href='%s' target='_blank'>%s</a>"
	tmplCityHeader    = "<b>%s</b><br>"
	tmplBranchLine    = "📍 %s — 📞 %s<br>"
	tmplBranchNoTel   = "📍 %s<br>"

	msgEmptyCategory   = "That category looks empty right now—can I suggest Dining or Bedroom instead?"
	msgDirectoryIntro  = "I’m not too sure about that yet, but no worries — you can reach any of our branches below:\n\n"
	msgFallbackIntro   = "I’m not completely sure about that yet — but I can help you in two ways:\n\n"
	msgFallbackBrowse  = "1️⃣ Browse products by category:\n"
	msgFallbackBranch  = "2️⃣ Reach one of our friendly branch teams:\n"
	msgSocialHeader    = "<b>Social Media</b><br>"
	msgDefaultInfoName = "About Us"
	msgDefaultInfoURL  = "/"
	msgPickLinkText    = "View"
)
