package database

// Catalog reference data. The seed resolves genres and authors by name and
// books by title, so re-running the seed never duplicates rows.

var seedGenres = []string{
	"Тарихи",
	"Поэзия",
	"Роман",
	"Повесть",
	"Философия",
	"Тарихи роман",
	"Автобиографиялық шығарма",
	"Тарихи повесть",
	"Биографиялық роман",
}

var seedAuthors = []string{
	"Ілияс Жансүгіров",
	"Абай Құнанбайұлы",
	"Мұхтар Әуезов",
	"Міржақып Дулатов",
	"Бердібек Соқпақбаев",
	"Ілияс Есенберлин",
	"Әзілхан Нұршайықов",
	"Әбдіжәміл Нұрпейісов",
	"Бауыржан Момышұлы",
	"Мұхтар Мағауин",
	"Сәуірбек Бақбергенов",
}

type seedBook struct {
	Title  string
	Author string
	Genre  string
	Year   int
	Image  string
	Pdf    string
	Price  int
}

var seedBooks = []seedBook{
	{
		Title:  "Құлагер: поэмалар",
		Author: "Ілияс Жансүгіров",
		Genre:  "Поэзия",
		Year:   1994,
		Image:  "kulager.jpg",
		Pdf:    "kulager.pdf",
		Price:  1234,
	},
	{
		Title:  "Абайдың қара сөздері",
		Author: "Абай Құнанбайұлы",
		Genre:  "Философия",
		Year:   1855,
		Image:  "abaikara.jpeg",
		Pdf:    "abaikara.pdf",
		Price:  1234,
	},
	{
		Title:  "Қараш - Қараш оқиғасы",
		Author: "Мұхтар Әуезов",
		Genre:  "Повесть",
		Year:   1927,
		Image:  "karash.jpeg",
		Pdf:    "karash.pdf",
		Price:  1234,
	},
	{
		Title:  "Оян, қазақ!",
		Author: "Міржақып Дулатов",
		Genre:  "Поэзия",
		Year:   1909,
		Image:  "oyankaz.jpg",
		Pdf:    "oyankaz.pdf",
		Price:  1234,
	},
	{
		Title:  "Менің атым Қожа",
		Author: "Бердібек Соқпақбаев",
		Genre:  "Повесть",
		Year:   1957,
		Image:  "kozha.jpg",
		Pdf:    "kozha.pdf",
		Price:  1234,
	},
	{
		Title:  "Көшпенділер",
		Author: "Ілияс Есенберлин",
		Genre:  "Тарихи роман",
		Year:   1971,
		Image:  "koshpendiler.jpg",
		Pdf:    "koshpendiler.pdf",
		Price:  1234,
	},
	{
		Title:  "Махаббат, қызық мол жылдар",
		Author: "Әзілхан Нұршайықов",
		Genre:  "Роман",
		Year:   1970,
		Image:  "mahabbat.jpg",
		Pdf:    "mahabbat.pdf",
		Price:  1234,
	},
	{
		Title:  "Қан мен тер",
		Author: "Әбдіжәміл Нұрпейісов",
		Genre:  "Роман",
		Year:   1970,
		Image:  "qanmenter.jpg",
		Pdf:    "qanmenter.pdf",
		Price:  1234,
	},
	{
		Title:  "Ұшқан ұя",
		Author: "Бауыржан Момышұлы",
		Genre:  "Автобиографиялық шығарма",
		Year:   1975,
		Image:  "ushkanuya.jpg",
		Pdf:    "ushkanuya.pdf",
		Price:  1234,
	},
	{
		Title:  "Қилы заман",
		Author: "Мұхтар Әуезов",
		Genre:  "Тарихи повесть",
		Year:   1928,
		Image:  "qilyzaman.jpg",
		Pdf:    "qilyzaman.pdf",
		Price:  1234,
	},
	{
		Title:  "Шоқан асулары",
		Author: "Сәуірбек Бақбергенов",
		Genre:  "Биографиялық роман",
		Year:   1983,
		Image:  "shokan.png",
		Pdf:    "shokan.pdf",
		Price:  1234,
	},
	{
		Title:  "Аласапыран",
		Author: "Мұхтар Мағауин",
		Genre:  "Тарихи роман",
		Year:   1980,
		Image:  "alasapyran.jpg",
		Pdf:    "alasapyran.pdf",
		Price:  1234,
	},
}
