package diagnostics

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"go-hrms/internal/currency"
	"go-hrms/internal/exchangerate"

	"github.com/redis/go-redis/v9"
)

// Check is one health check run by RunAll. Run returns a status and an Arabic
// message, plus the underlying error when there is one.
type Check struct {
	Name string
	Run  func(ctx context.Context) (status, message string, err error)
}

type pinger interface {
	PingContext(ctx context.Context) error
}

func DatabaseCheck(db pinger) Check {
	return Check{
		Name: "database",
		Run: func(ctx context.Context) (string, string, error) {
			if err := db.PingContext(ctx); err != nil {
				return StatusError, "قاعدة البيانات لا تستجيب", err
			}
			return StatusOK, "قاعدة البيانات متصلة", nil
		},
	}
}

func RedisCheck(rdb redis.Cmdable) Check {
	return Check{
		Name: "redis",
		Run: func(ctx context.Context) (string, string, error) {
			if err := rdb.Ping(ctx).Err(); err != nil {
				return StatusError, "خادم التخزين المؤقت لا يستجيب", err
			}
			return StatusOK, "خادم التخزين المؤقت متصل", nil
		},
	}
}

// BrokerDialer opens and closes a connection to one broker,
// connection.PingKafka in production.
type BrokerDialer func(ctx context.Context, broker string) error

func KafkaCheck(broker string, dial BrokerDialer) Check {
	return Check{
		Name: "kafka",
		Run: func(ctx context.Context) (string, string, error) {
			if broker == "" {
				return StatusWarning, "لم يتم ضبط عنوان وسيط الرسائل، لن تُرسل الأحداث", nil
			}
			if err := dial(ctx, broker); err != nil {
				return StatusError, "تعذر الوصول إلى وسيط الرسائل", err
			}
			return StatusOK, "وسيط الرسائل متاح", nil
		},
	}
}

// ActiveRateCheck warns when conversions would silently use the fallback rate.
func ActiveRateCheck(rates exchangerate.Service) Check {
	return Check{
		Name: "exchange_rate",
		Run: func(ctx context.Context) (string, string, error) {
			active, err := rates.GetActiveRate(ctx)
			if err != nil {
				return StatusError, "تعذر قراءة سعر الصرف الفعال", err
			}
			if active == nil {
				return StatusWarning,
					"لا يوجد سعر صرف فعال، يتم استخدام السعر الاحتياطي " + currency.FallbackRate.StringFixed(2),
					nil
			}
			return StatusOK, "سعر الصرف الفعال " + active.Rate.String() + " منذ " + active.EffectiveFrom, nil
		},
	}
}

func SettingsFileCheck(path string) Check {
	return Check{
		Name: "settings_file",
		Run: func(context.Context) (string, string, error) {
			if _, err := os.Stat(path); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return StatusWarning, "لم يتم حفظ إعدادات اتصال SQL Server بعد", nil
				}
				return StatusError, "تعذر الوصول إلى ملف الإعدادات", err
			}
			return StatusOK, "ملف إعدادات الاتصال موجود", nil
		},
	}
}
