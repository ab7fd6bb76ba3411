package util

import (
	"math/rand/v2"
	"strings"
	"time"
)

// Package-level default RNG to avoid allocations when rng is nil
var defaultRNG = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

// LatinNameProbability is the probability (0.0-1.0) of generating a Latin-script name
const LatinNameProbability = 0.20

var (
	// BulgarianMaleFirstNames is the list of Bulgarian male first names
	BulgarianMaleFirstNames = []string{
		"Иван", "Георги", "Димитър", "Петър", "Николай", "Христо", "Стефан", "Тодор",
		"Васил", "Александър", "Йордан", "Стоян", "Атанас", "Красимир", "Пламен", "Калоян",
		"Борис", "Илия", "Мартин", "Веселин", "Любомир", "Костадин", "Цветан", "Емил",
		"Симеон", "Явор", "Радослав", "Валентин", "Асен", "Кирил", "Методи", "Огнян",
	}

	// BulgarianFemaleFirstNames is the list of Bulgarian female first names
	BulgarianFemaleFirstNames = []string{
		"Мария", "Иванка", "Елена", "Йорданка", "Пенка", "Даниела", "Десислава", "Цветелина",
		"Гергана", "Милена", "Росица", "Надежда", "Виолета", "Теодора", "Невена", "Радостина",
		"Силвия", "Красимира", "Антоанета", "Весела", "Деница", "Калина", "Ралица", "Стефка",
		"Благовеста", "Василка", "Снежана", "Екатерина", "Лилия", "Зорница", "Магдалена", "Яна",
	}

	// BulgarianLastNames holds masculine surname forms; feminine forms are derived
	BulgarianLastNames = []string{
		"Иванов", "Георгиев", "Димитров", "Петров", "Николов", "Христов", "Стоянов", "Тодоров",
		"Илиев", "Василев", "Атанасов", "Петков", "Ангелов", "Йорданов", "Колев", "Маринов",
		"Попов", "Стефанов", "Костов", "Михайлов", "Кръстев", "Александров", "Цветков", "Павлов",
		"Николски", "Славчев", "Русев", "Янков", "Даскалов", "Найденов", "Ценов", "Маджаров",
	}

	// LatinMaleFirstNames is the list of transliterated male first names
	LatinMaleFirstNames = []string{
		"Ivan", "Georgi", "Dimitar", "Petar", "Nikolay", "Hristo", "Stefan", "Todor",
		"Vasil", "Aleksandar", "Yordan", "Stoyan", "Atanas", "Krasimir", "Plamen", "Kaloyan",
	}

	// LatinFemaleFirstNames is the list of transliterated female first names
	LatinFemaleFirstNames = []string{
		"Maria", "Ivanka", "Elena", "Yordanka", "Penka", "Daniela", "Desislava", "Tsvetelina",
		"Gergana", "Milena", "Rositsa", "Nadezhda", "Violeta", "Teodora", "Nevena", "Radostina",
	}

	// LatinLastNames holds transliterated masculine surname forms
	LatinLastNames = []string{
		"Ivanov", "Georgiev", "Dimitrov", "Petrov", "Nikolov", "Hristov", "Stoyanov", "Todorov",
		"Iliev", "Vasilev", "Atanasov", "Petkov", "Angelov", "Yordanov", "Kolev", "Marinov",
	}

	// DoctorNames is a pool of investigator names used for sample records
	DoctorNames = []string{
		"Д-р Иван Петров", "Д-р Мария Георгиева", "Проф. Д-р М. Цекова", "Д-р Николай Стоянов",
		"Д-р Елена Димитрова", "Доц. Д-р Стефан Колев",
	}

	// CoordinatorNames is a pool of study coordinator names used for sample records
	CoordinatorNames = []string{
		"Десислава Иванова", "Гергана Тодорова", "Калоян Маринов", "Ралица Попова",
		"Милена Ангелова", "Мартин Русев",
	}
)

// FeminineSurname derives the feminine form of a masculine Bulgarian surname.
// "Петров" -> "Петрова", "Николски" -> "Николска", "Petrov" -> "Petrova".
func FeminineSurname(masculine string) string {
	switch {
	case strings.HasSuffix(masculine, "ски"):
		return strings.TrimSuffix(masculine, "и") + "а"
	case strings.HasSuffix(masculine, "ski"):
		return strings.TrimSuffix(masculine, "i") + "a"
	case strings.HasSuffix(masculine, "ов"), strings.HasSuffix(masculine, "ев"):
		return masculine + "а"
	case strings.HasSuffix(masculine, "ov"), strings.HasSuffix(masculine, "ev"):
		return masculine + "a"
	default:
		return masculine
	}
}

// GeneratePatientName generates a realistic patient name based on sex.
// Names are 80% Cyrillic and 20% Latin script.
//
// Sex should be "M" or "F". Invalid values default to "F".
// If rng is nil, uses shared default RNG.
// Returns "First Last" with the surname in the matching gender form.
func GeneratePatientName(sex string, rng *rand.Rand) string {
	return GeneratePatientNameMix(sex, LatinNameProbability, rng)
}

// GeneratePatientNameMix is GeneratePatientName with an explicit share
// (0.0-1.0) of Latin-script names.
func GeneratePatientNameMix(sex string, latinShare float64, rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}

	useLatin := rng.Float64() < latinShare

	var firstName string
	var lastName string

	if useLatin {
		if sex == "M" {
			firstName = LatinMaleFirstNames[rng.IntN(len(LatinMaleFirstNames))]
		} else {
			firstName = LatinFemaleFirstNames[rng.IntN(len(LatinFemaleFirstNames))]
		}
		lastName = LatinLastNames[rng.IntN(len(LatinLastNames))]
	} else {
		if sex == "M" {
			firstName = BulgarianMaleFirstNames[rng.IntN(len(BulgarianMaleFirstNames))]
		} else {
			firstName = BulgarianFemaleFirstNames[rng.IntN(len(BulgarianFemaleFirstNames))]
		}
		lastName = BulgarianLastNames[rng.IntN(len(BulgarianLastNames))]
	}

	if sex != "M" {
		lastName = FeminineSurname(lastName)
	}
	return firstName + " " + lastName
}

// PickOne returns a random element of pool.
func PickOne(pool []string, rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}
	return pool[rng.IntN(len(pool))]
}
