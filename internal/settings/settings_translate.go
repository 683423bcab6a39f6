package settings

import (
	"context"
	"errors"
	"strings"
)

type errorTranslation struct {
	needles []string
	message string
}

// Order matters: the first entry whose needle appears in the driver error wins.
var errorTranslations = []errorTranslation{
	{[]string{"login failed"}, "فشل تسجيل الدخول: اسم المستخدم أو كلمة المرور غير صحيحة"},
	{[]string{"cannot open database"}, "تعذر فتح قاعدة البيانات المحددة، تحقق من اسم قاعدة البيانات والصلاحيات"},
	{[]string{"certificate", "x509", "tls"}, "خطأ في شهادة الأمان، جرّب تفعيل خيار الثقة بشهادة الخادم"},
	{[]string{"no such host", "lookup"}, "اسم الخادم غير معروف"},
	{[]string{"connection refused", "actively refused"}, "تم رفض الاتصال، تأكد من تشغيل الخادم وصحة المنفذ"},
	{[]string{"timeout", "deadline exceeded", "timed out"}, "انتهت مهلة الاتصال بالخادم"},
}

const genericConnectionError = "تعذر الاتصال بقاعدة البيانات"

// TranslateError maps a SQL Server driver error to the Arabic message shown
// on the settings screen.
func TranslateError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "انتهت مهلة الاتصال بالخادم"
	}

	msg := strings.ToLower(err.Error())
	for _, t := range errorTranslations {
		for _, needle := range t.needles {
			if strings.Contains(msg, needle) {
				return t.message
			}
		}
	}
	return genericConnectionError
}
