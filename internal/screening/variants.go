package screening

// Metadata is the clinic and protocol header printed at the top of a visit note.
type Metadata struct {
	Sponsor      string `yaml:"sponsor" mapstructure:"sponsor"`
	Site         string `yaml:"site" mapstructure:"site"`
	VisitDate    string `yaml:"visit_date" mapstructure:"visit_date"`
	Protocol     string `yaml:"protocol" mapstructure:"protocol"`
	Investigator string `yaml:"investigator" mapstructure:"investigator"`
}

// Merge returns m with every non-empty field of override applied.
func (m Metadata) Merge(override Metadata) Metadata {
	if override.Sponsor != "" {
		m.Sponsor = override.Sponsor
	}
	if override.Site != "" {
		m.Site = override.Site
	}
	if override.VisitDate != "" {
		m.VisitDate = override.VisitDate
	}
	if override.Protocol != "" {
		m.Protocol = override.Protocol
	}
	if override.Investigator != "" {
		m.Investigator = override.Investigator
	}
	return m
}

func (m Metadata) context() map[string]any {
	return map[string]any{
		"sponsor":      m.Sponsor,
		"site":         m.Site,
		"visit_date":   m.VisitDate,
		"protocol":     m.Protocol,
		"investigator": m.Investigator,
	}
}

// Built-in variant names.
const (
	VariantScreening   = "screening"
	VariantRescreening = "rescreening"
)

type variant struct {
	body string
	meta Metadata
}

const screeningBody = `СПОНСОР: {{ meta.sponsor }}
ЦЕНТЪР: {{ meta.site }}    ДАТА: {{ meta.visit_date }}
ПРОТОКОЛ №: {{ meta.protocol }}    Пациент: {{ full_name }}
ГЛАВЕН ИЗСЛЕДОВАТЕЛ: {{ meta.investigator }}    Номер пациент: {{ patient_id }}

ВИЗИТА 1 – СКРИНИНГ
Дата на раждане: {{ date_of_birth }}    Възраст: {{ age }} г.

Пациентът бе запознат подробно с целите, процедурите и рисковете на клиничното проучване и подписа информирано съгласие преди извършване на каквито и да било процедури по протокола.
Снета бе подробна анамнеза, извършен бе физикален преглед и бяха измерени жизнените показатели.
Пациентът бе информиран, че ако има партньорка в детеродна възраст трябва да използват подходящи методи за контрол на раждаемостта.
Пациентът отговаря на всички включващи и няма нито един от изключващите критерии към момента.
Пациентът бе скриниран в {{ screening_time }} ч. и му бе назначен номер: {{ patient_id }}.
Нежелани събития по време на визитата не се регистрират.
Визитата бе изготвена под диктовката на {{ doctor }} от координатор по клиничното проучване {{ coordinator }}.`

const rescreeningBody = `СПОНСОР: {{ meta.sponsor }}
ЦЕНТЪР: {{ meta.site }}    ДАТА: {{ meta.visit_date }}
ПРОТОКОЛ №: {{ meta.protocol }}    Пациент: {{ full_name }}
ГЛАВЕН ИЗСЛЕДОВАТЕЛ: {{ meta.investigator }}    Номер пациент: {{ patient_id }}

ВИЗИТА 1 – ПОВТОРЕН СКРИНИНГ
Дата на раждане: {{ date_of_birth }}    Възраст: {{ age }} г.

Пациентът се яви за повторен скрининг след неуспешен първоначален скрининг. Информираното съгласие бе подписано отново преди извършване на процедурите по протокола.
Актуализирана бе анамнезата, извършен бе физикален преглед и бяха измерени жизнените показатели.
Резултатите от повторните изследвания бяха прегледани от главния изследовател.
Пациентът отговаря на всички включващи и няма нито един от изключващите критерии към момента.
Пациентът бе скриниран повторно в {{ screening_time }} ч. и му бе назначен номер: {{ patient_id }}.
Нежелани събития по време на визитата не се регистрират.
Визитата бе изготвена под диктовката на {{ doctor }} от координатор по клиничното проучване {{ coordinator }}.`

var variants = map[string]variant{
	VariantScreening: {
		body: screeningBody,
		meta: Metadata{
			Sponsor:      "ModernaTX, Inc.",
			Site:         "BG004",
			VisitDate:    "12.11.2024",
			Protocol:     "mRNA-1010-P304",
			Investigator: "Проф. Д-р М. Цекова",
		},
	},
	VariantRescreening: {
		body: rescreeningBody,
		meta: Metadata{
			Sponsor:      "ModernaTX, Inc.",
			Site:         "BG004",
			VisitDate:    "26.11.2024",
			Protocol:     "mRNA-1010-P304",
			Investigator: "Проф. Д-р М. Цекова",
		},
	},
}

// DefaultMetadata returns the built-in header of a variant.
func DefaultMetadata(name string) (Metadata, bool) {
	v, ok := variants[name]
	return v.meta, ok
}
