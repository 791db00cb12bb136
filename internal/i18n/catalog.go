package i18n

import "fmt"

// FallbackLocale is used for unknown locales and for keys a locale does
// not define.
const FallbackLocale = "en"

// Locales lists the selectable languages in menu order.
var Locales = []string{"en", "ru", "ar", "fa", "de", "fr"}

// IsSupported reports whether the locale can be selected by a user.
func IsSupported(locale string) bool {
	_, ok := catalog[locale]
	return ok
}

// Text resolves a prompt key for a locale, falling back to English per
// key and to English entirely for unknown locales.
func Text(locale, key string) string {
	if table, ok := catalog[locale]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	return catalog[FallbackLocale][key]
}

// Textf resolves a key containing a single %s placeholder.
func Textf(locale, key string, arg string) string {
	return fmt.Sprintf(Text(locale, key), arg)
}

var catalog = map[string]map[string]string{
	"en": {
		"welcome":           "🎉 Welcome to XV Dev Labs! 🚀\n\nWe're here to help you with your blockchain and development needs. How can we assist you today? Please choose an option below:",
		"what_question":     "💭 What would you like to know? Please feel free to ask any question!",
		"send_project_id":   "🔍 Please send your project ID to get support:",
		"invalid_id":        "❌ Invalid project ID. Please check and try again.",
		"how_help":          "✅ Project found! How can we help you with this project?",
		"choose_service":    "🔧 Choose a service you need:",
		"vyper_contract":    "🐍 Vyper Smart Contract",
		"solidity_contract": "⚡ Solidity Smart Contract",
		"unit_test":         "🧪 Unit Test",
		"fuzz_test":         "🔬 Fuzz Test",
		"security_audit":    "🔐 Security Review/Audit",
		"create_website":    "🌐 Create Website",
		"create_bot":        "🤖 Create Bot",
		"describe_needs":    "📝 Please describe exactly what you need for %s:",
		"thanks_contact":    "🙏 Thank you! Our team will review your request and contact you soon.",
		"enter_project_id":  "🆔 Please enter your project ID to check status:",
		"project_not_found": "❌ Project not found. Please check your project ID.",
		"language_changed":  "✅ Language changed to English",
		"select_language":   "🌍 Select your preferred language:",
		"collecting_msgs":   "📝 You can send multiple messages. Click 'Finish' when done.",
		"question_sent":     "✅ Your question has been sent to our team. We'll get back to you soon!",
		"question_failed":   "❌ Sorry, there was an issue sending your question. Please try again later.",
		"support_sent":      "✅ Your support request has been sent to our team. We'll assist you soon!",
		"support_failed":    "❌ Sorry, there was an issue sending your request. Please try again later.",
		"message_added":     "✅ Message added (%s total)! Send more details or click 'Finish' when done.",
	},
	"ru": {
		"welcome":           "🎉 Добро пожаловать в XV Dev Labs! 🚀\n\nМы здесь, чтобы помочь вам с вашими потребностями в блокчейне и разработке. Как мы можем помочь вам сегодня? Пожалуйста, выберите опцию ниже:",
		"what_question":     "💭 Что бы вы хотели узнать? Пожалуйста, задавайте любой вопрос!",
		"send_project_id":   "🔍 Пожалуйста, отправьте ID вашего проекта для получения поддержки:",
		"invalid_id":        "❌ Недействительный ID проекта. Пожалуйста, проверьте и попробуйте снова.",
		"how_help":          "✅ Проект найден! Как мы можем помочь вам с этим проектом?",
		"choose_service":    "🔧 Выберите нужную услугу:",
		"vyper_contract":    "🐍 Смарт-контракт Vyper",
		"solidity_contract": "⚡ Смарт-контракт Solidity",
		"unit_test":         "🧪 Модульное тестирование",
		"fuzz_test":         "🔬 Фаззинг тестирование",
		"security_audit":    "🔐 Аудит безопасности",
		"create_website":    "🌐 Создание сайта",
		"create_bot":        "🤖 Создание бота",
		"describe_needs":    "📝 Пожалуйста, опишите точно, что вам нужно для %s:",
		"thanks_contact":    "🙏 Спасибо! Наша команда рассмотрит ваш запрос и свяжется с вами в ближайшее время.",
		"enter_project_id":  "🆔 Пожалуйста, введите ID вашего проекта для проверки статуса:",
		"project_not_found": "❌ Проект не найден. Пожалуйста, проверьте ID проекта.",
		"language_changed":  "✅ Язык изменен на русский",
		"select_language":   "🌍 Выберите предпочитаемый язык:",
		"collecting_msgs":   "📝 Вы можете отправить несколько сообщений. Нажмите 'Завершить', когда закончите.",
	},
	"ar": {
		"welcome":           "🎉 مرحباً بكم في XV Dev Labs! 🚀\n\nنحن هنا لمساعدتكم في احتياجاتكم من البلوك تشين والتطوير. كيف يمكننا مساعدتكم اليوم؟ يرجى اختيار خيار أدناه:",
		"what_question":     "💭 ماذا تريد أن تعرف؟ يرجى طرح أي سؤال!",
		"send_project_id":   "🔍 يرجى إرسال معرف مشروعك للحصول على الدعم:",
		"invalid_id":        "❌ معرف مشروع غير صالح. يرجى المراجعة والمحاولة مرة أخرى.",
		"how_help":          "✅ تم العثور على المشروع! كيف يمكننا مساعدتك في هذا المشروع؟",
		"choose_service":    "🔧 اختر الخدمة التي تحتاجها:",
		"vyper_contract":    "🐍 عقد ذكي Vyper",
		"solidity_contract": "⚡ عقد ذكي Solidity",
		"unit_test":         "🧪 اختبار الوحدة",
		"fuzz_test":         "🔬 اختبار Fuzz",
		"security_audit":    "🔐 مراجعة/تدقيق الأمان",
		"create_website":    "🌐 إنشاء موقع ويب",
		"create_bot":        "🤖 إنشاء بوت",
		"describe_needs":    "📝 يرجى وصف ما تحتاجه بالضبط لـ %s:",
		"thanks_contact":    "🙏 شكراً لك! سيراجع فريقنا طلبك وسيتواصل معك قريباً.",
		"enter_project_id":  "🆔 يرجى إدخال معرف مشروعك للتحقق من الحالة:",
		"project_not_found": "❌ المشروع غير موجود. يرجى التحقق من معرف المشروع.",
		"language_changed":  "✅ تم تغيير اللغة إلى العربية",
		"select_language":   "🌍 اختر لغتك المفضلة:",
		"collecting_msgs":   "📝 يمكنك إرسال عدة رسائل. انقر 'إنهاء' عند الانتهاء.",
	},
	"fa": {
		"welcome":           "🎉 به XV Dev Labs خوش آمدید! 🚀\n\nما اینجا هستیم تا در نیازهای بلاک‌چین و توسعه شما کمک کنیم. امروز چگونه می‌توانیم به شما کمک کنیم؟ لطفاً یکی از گزینه‌های زیر را انتخاب کنید:",
		"what_question":     "💭 چه چیزی می‌خواهید بدانید؟ لطفاً هر سوالی بپرسید!",
		"send_project_id":   "🔍 لطفاً شناسه پروژه خود را برای دریافت پشتیبانی ارسال کنید:",
		"invalid_id":        "❌ شناسه پروژه نامعتبر. لطفاً بررسی کرده و دوباره تلاش کنید.",
		"how_help":          "✅ پروژه پیدا شد! چگونه می‌توانیم در این پروژه به شما کمک کنیم؟",
		"choose_service":    "🔧 خدمتی را که نیاز دارید انتخاب کنید:",
		"vyper_contract":    "🐍 قرارداد هوشمند Vyper",
		"solidity_contract": "⚡ قرارداد هوشمند Solidity",
		"unit_test":         "🧪 تست واحد",
		"fuzz_test":         "🔬 تست Fuzz",
		"security_audit":    "🔐 بررسی/ممیزی امنیت",
		"create_website":    "🌐 ایجاد وب‌سایت",
		"create_bot":        "🤖 ایجاد ربات",
		"describe_needs":    "📝 لطفاً دقیقاً توضیح دهید که برای %s چه نیاز دارید:",
		"thanks_contact":    "🙏 متشکرم! تیم ما درخواست شما را بررسی کرده و به زودی با شما تماس خواهد گرفت.",
		"enter_project_id":  "🆔 لطفاً شناسه پروژه خود را برای بررسی وضعیت وارد کنید:",
		"project_not_found": "❌ پروژه پیدا نشد. لطفاً شناسه پروژه را بررسی کنید.",
		"language_changed":  "✅ زبان به فارسی تغییر کرد",
		"select_language":   "🌍 زبان مورد نظر خود را انتخاب کنید:",
		"collecting_msgs":   "📝 می‌توانید چندین پیام ارسال کنید. وقتی تمام کردید 'پایان' را کلیک کنید.",
	},
	"de": {
		"welcome":           "🎉 Willkommen bei XV Dev Labs! 🚀\n\nWir sind hier, um Ihnen bei Ihren Blockchain- und Entwicklungsbedürfnissen zu helfen. Wie können wir Ihnen heute helfen? Bitte wählen Sie eine Option unten:",
		"what_question":     "💭 Was möchten Sie wissen? Bitte stellen Sie jede Frage!",
		"send_project_id":   "🔍 Bitte senden Sie Ihre Projekt-ID für Support:",
		"invalid_id":        "❌ Ungültige Projekt-ID. Bitte überprüfen und erneut versuchen.",
		"how_help":          "✅ Projekt gefunden! Wie können wir Ihnen bei diesem Projekt helfen?",
		"choose_service":    "🔧 Wählen Sie einen benötigten Service:",
		"vyper_contract":    "🐍 Vyper Smart Contract",
		"solidity_contract": "⚡ Solidity Smart Contract",
		"unit_test":         "🧪 Unit Test",
		"fuzz_test":         "🔬 Fuzz Test",
		"security_audit":    "🔐 Sicherheitsüberprüfung/Audit",
		"create_website":    "🌐 Website erstellen",
		"create_bot":        "🤖 Bot erstellen",
		"describe_needs":    "📝 Bitte beschreiben Sie genau, was Sie für %s benötigen:",
		"thanks_contact":    "🙏 Vielen Dank! Unser Team wird Ihre Anfrage prüfen und sich bald bei Ihnen melden.",
		"enter_project_id":  "🆔 Bitte geben Sie Ihre Projekt-ID ein, um den Status zu überprüfen:",
		"project_not_found": "❌ Projekt nicht gefunden. Bitte überprüfen Sie Ihre Projekt-ID.",
		"language_changed":  "✅ Sprache auf Deutsch geändert",
		"select_language":   "🌍 Wählen Sie Ihre bevorzugte Sprache:",
		"collecting_msgs":   "📝 Sie können mehrere Nachrichten senden. Klicken Sie 'Fertig', wenn Sie fertig sind.",
	},
	"fr": {
		"welcome":           "🎉 Bienvenue chez XV Dev Labs! 🚀\n\nNous sommes là pour vous aider avec vos besoins en blockchain et développement. Comment pouvons-nous vous aider aujourd'hui? Veuillez choisir une option ci-dessous:",
		"what_question":     "💭 Que souhaitez-vous savoir? N'hésitez pas à poser n'importe quelle question!",
		"send_project_id":   "🔍 Veuillez envoyer votre ID de projet pour obtenir du support:",
		"invalid_id":        "❌ ID de projet invalide. Veuillez vérifier et réessayer.",
		"how_help":          "✅ Projet trouvé! Comment pouvons-nous vous aider avec ce projet?",
		"choose_service":    "🔧 Choisissez un service dont vous avez besoin:",
		"vyper_contract":    "🐍 Contrat intelligent Vyper",
		"solidity_contract": "⚡ Contrat intelligent Solidity",
		"unit_test":         "🧪 Test unitaire",
		"fuzz_test":         "🔬 Test Fuzz",
		"security_audit":    "🔐 Audit de sécurité",
		"create_website":    "🌐 Créer un site web",
		"create_bot":        "🤖 Créer un bot",
		"describe_needs":    "📝 Veuillez décrire exactement ce dont vous avez besoin pour %s:",
		"thanks_contact":    "🙏 Merci! Notre équipe examinera votre demande et vous contactera bientôt.",
		"enter_project_id":  "🆔 Veuillez entrer votre ID de projet pour vérifier le statut:",
		"project_not_found": "❌ Projet non trouvé. Veuillez vérifier votre ID de projet.",
		"language_changed":  "✅ Langue changée en français",
		"select_language":   "🌍 Sélectionnez votre langue préférée:",
		"collecting_msgs":   "📝 Vous pouvez envoyer plusieurs messages. Cliquez 'Terminer' quand vous avez fini.",
	},
}
