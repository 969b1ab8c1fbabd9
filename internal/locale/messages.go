package locale

// Key names a piece of user-facing copy.
type Key string

const (
	MsgApplicationReceived  Key = "application_received"
	MsgCVRequired           Key = "cv_required"
	MsgInvalidFields        Key = "invalid_fields"
	MsgFileTooLarge         Key = "file_too_large"
	MsgUnsupportedFileType  Key = "unsupported_file_type"
	MsgAccountCreated       Key = "account_created"
	MsgEmailTaken           Key = "email_taken"
	MsgLanguageChanged      Key = "language_changed"
	MsgLanguageNotSupported Key = "language_not_supported"
	MsgServerError          Key = "server_error"
	MsgBadRequest           Key = "bad_request"

	MsgSiteName            Key = "site_name"
	MsgHomeTitle           Key = "home_title"
	MsgHomeTagline         Key = "home_tagline"
	MsgStart               Key = "start"
	MsgSignupTitle         Key = "signup_title"
	MsgApplicationTitle    Key = "application_title"
	MsgFullName            Key = "full_name"
	MsgEmail               Key = "email"
	MsgPassword            Key = "password"
	MsgAge                 Key = "age"
	MsgGraduationYear      Key = "graduation_year"
	MsgExperience          Key = "experience"
	MsgSkills              Key = "skills"
	MsgCV                  Key = "cv"
	MsgSubmit              Key = "submit"
	MsgCreateAccount       Key = "create_account"
	MsgSuccessTitle        Key = "success_title"
	MsgSuccessHeading      Key = "success_heading"
	MsgSuccessThanks       Key = "success_thanks"
	MsgSuccessReview       Key = "success_review"
	MsgConfirmationHeading Key = "confirmation_heading"
	MsgReferenceNumber     Key = "reference_number"
	MsgBackHome            Key = "back_home"
	MsgNotFoundTitle       Key = "not_found_title"
	MsgNotFoundBody        Key = "not_found_body"
	MsgLanguage            Key = "language"
)

var arabic = map[Key]string{
	MsgApplicationReceived:  "تم استلام طلبك بنجاح!",
	MsgCVRequired:           "يرجى تحميل السيرة الذاتية",
	MsgInvalidFields:        "يرجى التحقق من البيانات المدخلة",
	MsgFileTooLarge:         "حجم الملف يتجاوز الحد المسموح",
	MsgUnsupportedFileType:  "خطأ: يسمح فقط بملفات PDF و DOC و DOCX!",
	MsgAccountCreated:       "تم إنشاء حسابك بنجاح!",
	MsgEmailTaken:           "البريد الإلكتروني مسجل مسبقاً",
	MsgLanguageChanged:      "تم تغيير اللغة",
	MsgLanguageNotSupported: "لغة غير مدعومة",
	MsgServerError:          "حدث خطأ في الخادم",
	MsgBadRequest:           "طلب غير صالح",

	MsgSiteName:            "Careers Community",
	MsgHomeTitle:           "مجتمع الوظائف",
	MsgHomeTagline:         "ابدأ رحلتك المهنية معنا",
	MsgStart:               "ابدأ الآن",
	MsgSignupTitle:         "إنشاء حساب",
	MsgApplicationTitle:    "طلب توظيف",
	MsgFullName:            "الاسم الكامل",
	MsgEmail:               "البريد الإلكتروني",
	MsgPassword:            "كلمة المرور",
	MsgAge:                 "العمر",
	MsgGraduationYear:      "سنة التخرج",
	MsgExperience:          "سنوات الخبرة",
	MsgSkills:              "المهارات",
	MsgCV:                  "السيرة الذاتية (PDF, DOC, DOCX)",
	MsgSubmit:              "إرسال الطلب",
	MsgCreateAccount:       "إنشاء الحساب",
	MsgSuccessTitle:        "تم الإرسال بنجاح",
	MsgSuccessHeading:      "تم الإرسال بنجاح!",
	MsgSuccessThanks:       "شكراً لتقديمك في Careers Community",
	MsgSuccessReview:       "سيتم مراجعة طلبك والاتصال بك في أقرب وقت",
	MsgConfirmationHeading: "تم إرسال طلبك بنجاح!",
	MsgReferenceNumber:     "رقم الطلب",
	MsgBackHome:            "العودة للصفحة الرئيسية",
	MsgNotFoundTitle:       "الصفحة غير موجودة",
	MsgNotFoundBody:        "عذراً، الصفحة التي تبحث عنها غير موجودة",
	MsgLanguage:            "اللغة",
}

var english = map[Key]string{
	MsgApplicationReceived:  "Application submitted successfully!",
	MsgCVRequired:           "Please upload your résumé",
	MsgInvalidFields:        "Please check the submitted fields",
	MsgFileTooLarge:         "The file exceeds the upload size limit",
	MsgUnsupportedFileType:  "Only PDF, DOC and DOCX files are allowed",
	MsgAccountCreated:       "Account created successfully!",
	MsgEmailTaken:           "This email is already registered",
	MsgLanguageChanged:      "Language changed",
	MsgLanguageNotSupported: "Language not supported",
	MsgServerError:          "A server error occurred",
	MsgBadRequest:           "Bad request",

	MsgSiteName:            "Careers Community",
	MsgHomeTitle:           "Careers Community",
	MsgHomeTagline:         "Start your career journey with us",
	MsgStart:               "Get started",
	MsgSignupTitle:         "Create Account",
	MsgApplicationTitle:    "Job Application",
	MsgFullName:            "Full name",
	MsgEmail:               "Email",
	MsgPassword:            "Password",
	MsgAge:                 "Age",
	MsgGraduationYear:      "Graduation year",
	MsgExperience:          "Years of experience",
	MsgSkills:              "Skills",
	MsgCV:                  "CV (PDF, DOC, DOCX)",
	MsgSubmit:              "Submit application",
	MsgCreateAccount:       "Create account",
	MsgSuccessTitle:        "Success",
	MsgSuccessHeading:      "Success!",
	MsgSuccessThanks:       "Thank you for your submission to Careers Community",
	MsgSuccessReview:       "Your application will be reviewed and we will contact you soon",
	MsgConfirmationHeading: "Your application has been sent!",
	MsgReferenceNumber:     "Reference number",
	MsgBackHome:            "Back to Home",
	MsgNotFoundTitle:       "Page Not Found",
	MsgNotFoundBody:        "Sorry, the page you are looking for does not exist",
	MsgLanguage:            "Language",
}

// Message returns the copy for key in the given locale code. Arabic has its
// own strings; every other supported language reads the English copy.
func Message(code string, key Key) string {
	catalog := english
	if code == DefaultCode {
		catalog = arabic
	}
	if s, ok := catalog[key]; ok {
		return s
	}
	return string(key)
}

// Translator returns a lookup bound to one locale, for templates.
func Translator(code string) func(string) string {
	return func(k string) string { return Message(code, Key(k)) }
}
