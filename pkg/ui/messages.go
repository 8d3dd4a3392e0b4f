package ui

import "strings"

// Messages are the user-facing strings of the landing page
type Messages struct {
	Locale string

	Sending      string
	Failure      string
	InvalidPhone string

	// OfferRemaining takes days, hours, minutes
	OfferRemaining string
	OfferExpired   string

	SummaryTitle   string
	SummaryName    string
	SummaryDOB     string
	SummaryPhone   string
	SummaryService string
	SummaryMessage string
}

var Arabic = Messages{
	Locale:         "ar",
	Sending:        "جاري الإرسال...",
	Failure:        "عذراً، حدث خطأ أثناء إرسال البيانات. يرجى المحاولة مرة أخرى أو الاتصال بنا مباشرة.",
	InvalidPhone:   "يرجى إدخال رقم هاتف صحيح يبدأ بـ 01",
	OfferRemaining: "باقي على انتهاء العرض: %d يوم %d ساعة %d دقيقة",
	OfferExpired:   "انتهى العرض",
	SummaryTitle:   "استفسار جديد من الموقع الإلكتروني:",
	SummaryName:    "الاسم",
	SummaryDOB:     "تاريخ الميلاد",
	SummaryPhone:   "رقم الهاتف",
	SummaryService: "الخدمة المطلوبة",
	SummaryMessage: "ملاحظات",
}

var English = Messages{
	Locale:         "en",
	Sending:        "Sending...",
	Failure:        "Sorry, something went wrong while sending your details. Please try again or contact us directly.",
	InvalidPhone:   "Please enter a valid phone number starting with 01",
	OfferRemaining: "Offer ends in: %d days %d hours %d minutes",
	OfferExpired:   "Offer ended",
	SummaryTitle:   "New website inquiry:",
	SummaryName:    "Name",
	SummaryDOB:     "Date of birth",
	SummaryPhone:   "Phone",
	SummaryService: "Requested service",
	SummaryMessage: "Notes",
}

// MessagesFor picks the strings for a locale tag, falling back to Arabic
func MessagesFor(locale string) Messages {
	tag := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	if tag == "en" {
		return English
	}
	return Arabic
}
