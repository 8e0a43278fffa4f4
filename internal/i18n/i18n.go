// Package i18n holds the static UI translation table for English,
// Russian, and Kazakh.
package i18n

import "github.com/abhisek/errormind/internal/catalog"

// Key identifies a translatable UI string.
type Key string

const (
	HeroTitle        Key = "heroTitle"
	HeroSubtitle     Key = "heroSubtitle"
	GetStarted       Key = "getStarted"
	ErrorGym         Key = "errorGym"
	Dashboard        Key = "dashboard"
	Materials        Key = "materials"
	Login            Key = "login"
	Signup           Key = "signup"
	Logout           Key = "logout"
	KnowledgeFolders Key = "knowledgeFolders"
	Analysis         Key = "analysis"
	ErrorType        Key = "errorType"
	LogicBreakPoint  Key = "logicBreakPoint"
	Advice           Key = "advice"
	Hint             Key = "hint"
	Subjects         Key = "subjects"
	Levels           Key = "levels"
	StepsPlaceholder Key = "stepsPlaceholder"
	Submit           Key = "submit"
	ReflectionTitle  Key = "reflectionTitle"
	ReflectionDesc   Key = "reflectionDesc"
	SpotTheError     Key = "spotTheError"
	SequenceTask     Key = "sequenceTask"
	AuthWelcome      Key = "authWelcome"
	AuthSubtitle     Key = "authSubtitle"
	Email            Key = "email"
	Password         Key = "password"
	Name             Key = "name"
	TrainingTile     Key = "trainingTile"
	TrainingDesc     Key = "trainingDesc"
	GymTile          Key = "gymTile"
	GymDesc          Key = "gymDesc"
	LibTile          Key = "libTile"
	LibDesc          Key = "libDesc"
	StatsTile        Key = "statsTile"
	StatsDesc        Key = "statsDesc"
	SearchPrompt     Key = "searchPlaceholder"
	Guide            Key = "guide"
	Back             Key = "back"
)

// T returns the translation of key in lang, falling back to English,
// then to the raw key name.
func T(lang catalog.Language, key Key) string {
	if table, ok := translations[lang]; ok {
		if s, ok := table[key]; ok && s != "" {
			return s
		}
	}
	if s, ok := translations[catalog.LangEN][key]; ok {
		return s
	}
	return string(key)
}

var translations = map[catalog.Language]map[Key]string{
	catalog.LangEN: {
		HeroTitle:        "Precision through Logic.",
		HeroSubtitle:     "The Global Knowledge Core. Diagnostic engine for School, Bachelor, Master, and PhD tiers.",
		GetStarted:       "Initialize Arena",
		ErrorGym:         "Error Lab",
		Dashboard:        "Mission Control",
		Materials:        "Technical Vault",
		Login:            "Auth Node",
		Signup:           "Register Identity",
		Logout:           "Disconnect",
		KnowledgeFolders: "Insight Logs",
		Analysis:         "AI Logic Diagnostic",
		ErrorType:        "Vector Analysis",
		LogicBreakPoint:  "Failure Node",
		Advice:           "Corrective Protocol",
		Hint:             "Request Data",
		Subjects:         "Fields",
		Levels:           "Certifications",
		StepsPlaceholder: "Input derivation step (LaTeX supported)...",
		Submit:           "Run Analysis",
		ReflectionTitle:  "Cognitive Latency",
		ReflectionDesc:   "Tracking processing delays in logical nodes.",
		SpotTheError:     "Diagnostic Scan",
		SequenceTask:     "Process Ordering",
		AuthWelcome:      "Access Required",
		AuthSubtitle:     "Secure connection standby.",
		Email:            "Node Email",
		Password:         "Secure Key",
		Name:             "User Identity",
		TrainingTile:     "Knowledge Arena",
		TrainingDesc:     "Tests across K-12, Bachelor, Master, and Expert levels.",
		GymTile:          "Cognitive Remediation",
		GymDesc:          "Persistent focus on past failure vectors.",
		LibTile:          "Knowledge Vault",
		LibDesc:          "Raw formulas, constants, and ISO protocols.",
		StatsTile:        "Neuro-Matrix",
		StatsDesc:        "Live performance analytics.",
		SearchPrompt:     "Search (Ohm, Lorentz, Planck, Schrodinger)...",
		Guide:            "System Manual",
		Back:             "Go Back",
	},
	catalog.LangRU: {
		HeroTitle:        "Точность через Логику.",
		HeroSubtitle:     "Глобальное ядро знаний. Диагностика для уровней Школа, Бакалавриат, Магистратура и PhD.",
		GetStarted:       "Запуск Арены",
		ErrorGym:         "Лаборатория Ошибок",
		Dashboard:        "Центр Управления",
		Materials:        "Технический Свод",
		Login:            "Вход",
		Signup:           "Регистрация",
		Logout:           "Отключение",
		KnowledgeFolders: "Логи Инсайтов",
		Analysis:         "ИИ Диагностика Логики",
		ErrorType:        "Вектор Ошибки",
		LogicBreakPoint:  "Узел Сбоя",
		Advice:           "Протокол Коррекции",
		Hint:             "Запрос Данных",
		Subjects:         "Области",
		Levels:           "Сертификация",
		StepsPlaceholder: "Введите шаг вывода (LaTeX поддерживается)...",
		Submit:           "Анализ",
		ReflectionTitle:  "Когнитивная Латентность",
		ReflectionDesc:   "Отслеживание задержек в узлах логики.",
		SpotTheError:     "Диагностический Скан",
		SequenceTask:     "Порядок Процессов",
		AuthWelcome:      "Требуется Доступ",
		AuthSubtitle:     "Ожидание защищенного соединения.",
		Email:            "Email Узла",
		Password:         "Ключ Доступа",
		Name:             "Идентификатор",
		TrainingTile:     "Арена Знаний",
		TrainingDesc:     "Тесты уровней Школа, Бакалавр, Магистр и Эксперт.",
		GymTile:          "Когнитивное Исправление",
		GymDesc:          "Фокус на прошлых векторах сбоев.",
		LibTile:          "Хранилище Знаний",
		LibDesc:          "Сырые формулы, константы и протоколы ISO.",
		StatsTile:        "Нейро-Матрица",
		StatsDesc:        "Живая аналитика производительности.",
		SearchPrompt:     "Поиск (Ом, Лоренц, Планк, Шредингер)...",
		Guide:            "Руководство",
		Back:             "Назад",
	},
	catalog.LangKK: {
		HeroTitle:        "Логика арқылы дәлдік.",
		HeroSubtitle:     "Жалпы білім орталығы. Мектеп, Бакалавриат, Магистратура және PhD деңгейлері.",
		GetStarted:       "Аренаны іске қосу",
		ErrorGym:         "Қателер зертханасы",
		Dashboard:        "Басқару Орталығы",
		Materials:        "Техникалық қор",
		Login:            "Кіру",
		Signup:           "Тіркелу",
		Logout:           "Шығу",
		KnowledgeFolders: "Инсайттар логы",
		Analysis:         "ИИ Логикалық диагностика",
		ErrorType:        "Қате векторы",
		LogicBreakPoint:  "Сәтсіздік түйіні",
		Advice:           "Түзету хаттамасы",
		Hint:             "Деректерді сұрау",
		Subjects:         "Салалар",
		Levels:           "Сертификаттау",
		StepsPlaceholder: "Шығару қадамын енгізіңіз...",
		Submit:           "Талдау",
		ReflectionTitle:  "Когнитивті латенттілік",
		ReflectionDesc:   "Логикалық түйіндердегі кідірістерді бақылау.",
		SpotTheError:     "Диагностикалық скан",
		SequenceTask:     "Процестер реті",
		AuthWelcome:      "Рұқсат қажет",
		AuthSubtitle:     "Байланыс орнатылуда.",
		Email:            "Email",
		Password:         "Құпия кілт",
		Name:             "Сәйкестендіру",
		TrainingTile:     "Білім Аренасы",
		TrainingDesc:     "Мектеп, Бакалавр, Магистр және Эксперт деңгейлері.",
		GymTile:          "Когнитивті түзету",
		GymDesc:          "Өткен қателерге назар аудару.",
		LibTile:          "Білім Қоры",
		LibDesc:          "Формулалар, тұрақтылар және ISO хаттамалары.",
		StatsTile:        "Нейро-Matrix",
		StatsDesc:        "Өнімділік аналитикасы.",
		SearchPrompt:     "Іздеу...",
		Guide:            "Нұсқаулық",
		Back:             "Артқа",
	},
}
