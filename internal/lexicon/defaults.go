// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

// Defaults returns a fresh, uncompiled copy of the built-in tables.
func Defaults() *Lexicon {
	return &Lexicon{
		NoisePatterns: []string{
			`^\d+$`,
			`(?i)^стр\.?\s*\d+`,
			`^-\s*\d+\s*-$`,
			`(?i)^лист\s+\d+`,
			`(?i)^страница\s+\d+`,
			`(?i)^утвержд`,
			`(?i)^согласован`,
			`(?i)^протокол`,
			`(?i)^ректор`,
			`(?i)^проректор`,
			`(?i)^декан`,
			`(?i)^зав\.\s*кафедр`,
			`(?i)^заведующ`,
		},
		HeaderWords: []string{
			"наименование", "тема", "раздел", "содержание", "лекци", "практич",
			"лаборатор", "самост", "всего", "№ п/п", "номер", "часы", "занятия",
		},
		SkipWords: []string{
			"итого", "всего", "зачет", "зачёт", "экзамен", "аттестац", "промежуточ",
			"контрольн", "курсов", "итого по", "семестр",
		},
		SectionPrefix: `(?i)^((?:Раздел|Тема|Модуль)\s+\d+\.?\s*[:.]?\s*)`,
		SectionStop: []string{
			`^[2-9]\.\s`,
			`^[2-9]\.\d`,
			`^1\.[4-9]`,
			`^1\.1[0-9]`,
			`(?i)^Место\s+дисциплины`,
			`(?i)^Содержание\s+дисциплины`,
			`(?i)^Структура\s+дисциплины`,
			`(?i)^Объ[её]м\s+дисциплины`,
			`(?i)^Компетенци`,
			`(?i)^Планируемые\s+результат`,
			`(?i)^Требования\s+к\s+результат`,
			`(?i)^В\s+результате\s+(?:изучения|освоения)`,
			`(?i)^Перечень\s+планируемых`,
			`(?i)^Тематический\s+план`,
			`(?i)^Учебно-тематический`,
			`(?i)^Распределение\s+часов`,
			`(?i)^Виды\s+(?:учебной\s+)?работ`,
			`(?i)^Формы?\s+(?:текущего\s+)?контрол`,
			`(?i)^Фонд\s+оценочных`,
		},

		Description: DescriptionPatterns{
			Start: []string{
				`(?i)аннотац\p{L}*(?:\s+(?:учебной\s+)?дисциплины)?`,
				`(?i)краткое\s+(?:описание|содержание)(?:\s+(?:учебной\s+)?дисциплины)?`,
				`(?i)общая\s+характеристик\p{L}*(?:\s+(?:учебной\s+)?дисциплины)?`,
				`(?i)описание\s+дисциплины`,
				`(?i)^1\.1\.?\s`,
				`(?i)назначение\s+дисциплины`,
			},
			Stop: []string{
				`(?i)^Цел[иь]\s`,
				`^1\.[2-9]`,
			},
			Text: []string{
				`(?is)(?:аннотац\p{L}*|краткое\s+описание|общая\s+характеристик\p{L}*)\s*(?:дисциплины\s*)?[.:;]?\s*(.*?)(?:цел[иь]\s|1\.[2-9]|2\.\s|место\s+дисциплины|компетенци)`,
				`(?is)1\.1\.?\s*(?:описание|аннотация|общая\s+характеристика)\s*(?:дисциплины\s*)?[.:;]?\s*(.*?)(?:1\.[2-9]|2\.\s|цел[иь]\s)`,
				`(?is)(?:Дисциплина|Курс)\s*«[^»]+»\s*((?:является|относится|направлен|предназначен|изучает|рассматривает|посвящен|формирует|обеспечивает)\p{L}*\s.*?)(?:цел[иь]\s|1\.[2-9]|2\.\s)`,
			},
			Indicators: []string{
				"дисциплина", "курс", "изучает", "рассматривает",
				"посвящен", "направлен", "формирует", "обеспечивает",
				"является", "предназначен", "охватывает", "включает",
				"знакомит", "раскрывает", "содержит", "ориентирован",
				"предполагает", "нацелен", "призван",
			},
			MinLength: 20,
		},

		Goals: GoalPatterns{
			Start: []string{
				`(?i)цел[иь]\s+(?:и\s+задачи\s+)?(?:освоения\s+)?(?:учебной\s+)?(?:дисциплины|курса)`,
				`(?i)цел[иь]\s+(?:изучения|преподавания)(?:\s+(?:учебной\s+)?(?:дисциплины|курса))?`,
				`(?i)^1\.3\.?\s`,
				`(?i)^1\.2\.?\s*Цел\p{L}*`,
				`(?i)целью\s+(?:освоения|изучения|преподавания)(?:\s+(?:учебной\s+)?(?:дисциплины|курса))?(?:\s*«[^»]*»)?(?:\s+(?:является|служит))?`,
				`(?i)основн\p{L}+\s+цел\p{L}*`,
			},
			Stop: []string{
				`(?i)^Задачи\s+дисциплины`,
				`(?i)^Основные\s+задачи`,
				`^1\.[4-9]`,
			},
			Text: []string{
				`(?is)Цел[иь]\s+(?:и\s+задачи\s+)?(?:освоения\s+)?(?:дисциплины|курса)\s*[.:;]?\s*(.*?)(?:2\.\s|1\.[4-9]|Место\s+дисциплины|Содержание|Компетенци|Планируемые\s+результат|Структура|Объ[её]м)`,
				`(?is)Целью\s+(?:изучения|освоения|преподавания)\s+(?:учебной\s+)?(?:дисциплины|курса)\s+(?:«[^»]+»\s+)?(?:является|служит)\s*(.*?)(?:2\.\s|Место|Задачи|Компетенци|В\s+результате)`,
				`(?is)1\.3\.?\s*Цел[иь]\s*(?:и\s+задачи\s+)?(?:дисциплины\s*)?[.:;]?\s*(.*?)(?:1\.[4-9]|2\.\s|Место|Содержание)`,
			},
			Sentence:  `(?i)(?:целью|цель)\s+(?:освоения|изучения|преподавания|дисциплины|курса)[^.]*?(?:является|служит|состоит|заключается)[^.]*\.`,
			KeepStems: []string{"формирован", "развити", "освоени"},
			Marker:    `(?i)цел[иь]`,
			SpanText:  `(?is)(?:1\.3|Цели)\.?\s*Цели.*?\n(.*?)(?:2\.|Содержание)`,
			SpanStart: `(?i)^(?:1\.3|Цели\s+дисциплины)`,
			SpanStop:  `(?i)^(?:2\.|Содержание)`,
			MinLength: 15,
		},

		Software: SoftwarePatterns{
			Markers: []string{
				"перечень программного", "программное обеспечение", "перечень лицензионного",
				"программные средства", "программное и коммуникационное",
				"перечень информационных технологий",
			},
			StartPrefix: `^5\.2\.?\s`,
			End:         `(?i)^(?:[5-9]\.\d|Материально|Перечень\s+информацион|Перечень\s+ресурсов|Описание\s+материально|Образовательные\s+технологии|Оценочные\s+средства|Методические\s+указания|Перечень\s+учебно|Фонд\s+оценочных)`,
			Filler: []string{
				"перечень", "программное обеспечение", "лицензионное", "свободно распростран",
				"при необходимости", "не предусмотрен", "не требуется", "таблица",
				"наименование", "№ п/п",
			},
			TableMarkers: []string{
				"программное обеспечение", "перечень программного", "лицензионное",
				"наименование по", "программные средства",
			},
			TableHeaderWords: []string{"№", "наименование", "п/п", "название", "реквизиты", "лицензи"},
			License:          `(?i)^(?:Бессрочн|Свободн|Лицензи|GPLv|MIT|Apache|GNU)`,
			Known: []string{
				`(?i)Microsoft\s+[\p{L}\p{N}_]+`,
				`(?i)MS\s+Office`,
				`(?i)(?:Windows|Linux)\s*\d*`,
				`(?i)Python\s*\d*`,
				`(?i)MATLAB`,
				`(?i)Visual\s+Studio`,
				`(?i)(?:MySQL|PostgreSQL|MongoDB)`,
				`(?i)(?:КонсультантПлюс|Гарант)`,
				`(?i)1С[:\s][\p{L}\p{N}_]+`,
				`(?i)(?:AutoCAD|КОМПАС|SolidWorks)`,
			},
			TextBlock:  `(?is)(?:Перечень\s+программного|Программное\s+обеспечение).*?\n(.*?)(?:[5-9]\.\d|Материально|Образовательные|Оценочные|Особенности)`,
			TextFiller: []string{"перечень", "программное обеспечение", "наименование", "№ п/п"},
		},

		Literature: LiteraturePatterns{
			MainHeaders: []string{
				`(?i)основн\p{L}*\s*литератур`,
				`(?i)4\.1[.\s]`,
				`(?i)основн\p{L}*\s*учебн\p{L}*\s*литератур`,
				`(?i)обязательн\p{L}*\s*литератур`,
			},
			AdditionalHeaders: []string{
				`(?i)дополнительн\p{L}*\s*литератур`,
				`(?i)4\.2[.\s]`,
				`(?i)дополнительн\p{L}*\s*учебн\p{L}*\s*литератур`,
			},
			Stop: []string{
				`^[356]\.\d`,
				`^4\.3`,
				`(?i)^[356]\.?\s+(?:Перечень|Материально|Методические|Оценочные|Фонд|Описание|Учебно|Ресурсы|Информационн|Программное)`,
				`(?i)^Перечень\s+ресурсов`,
				`(?i)^Перечень\s+программного`,
				`(?i)^Перечень\s+информацион`,
				`(?i)^Материально`,
				`(?i)^Методические\s+указания`,
				`(?i)^Оценочные\s+средства`,
			},
			Heading:     `^[3-9]\.\s+\p{Lu}`,
			TableHeader: `(?i)автор|название|наименование|библиограф|источник`,
			EBS:         `(?i)ЭБС|электронн\p{L}+.библиотечн|Znanium|Лань|Юрайт|IPRbooks`,
			BookWords:   `(?i)учебник|пособие|монограф`,
			Standard:    `(?i)ГОСТ|стандарт|СНиП|СП\s+\d`,
		},

		Metadata: MetadataPatterns{
			Name: []string{
				`(?is)(?:программа\s+учебной\s+дисциплины|рабочая\s+программа\s+дисциплины)\s*[«"](.*?)[»"]`,
				`(?i)ДИСЦИПЛИНЫ\s*«([^»]+)»`,
				`(?i)по\s+дисциплине\s*[«"](.*?)[»"]`,
				`(?i)дисциплин\p{L}*\s*[«"](.*?)[»"]`,
			},
			NameSkipWords: []string{"УНИВЕРСИТЕТ", "СОГЛАСОВАН", "УТВЕРЖД", "ПРОТОКОЛ", "МИНИСТЕРСТВ", "ФАКУЛЬТЕТ", "КАФЕДР"},
			Levels: []Level{
				{Stem: "магистратур", Name: "Магистратура"},
				{Stem: "бакалавриат", Name: "Бакалавриат"},
				{Stem: "специалитет", Name: "Специалитет"},
				{Stem: "аспирантур", Name: "Аспирантура"},
			},
			Program:       `(?i)(?:образовательн\p{L}+\s+программ\p{L}+|направлени\p{L}+\s+подготовки)[ \t]*[:.]?[ \t]*(?:(\d{2}\.\d{2}\.\d{2})[ \t]+)?(.+?)(?:\n|$)`,
			ProgramReject: []string{"паспорт", "дисциплин", "утвержд"},
			Direction:     `(?i)направлени\p{L}*(?:[ \t]+подготовки)?[ \t]*[:.]?[ \t]*(\d{2}\.\d{2}\.\d{2})[ \t]*(.*?)(?:\n|$)`,
			Period:        `(?i)(\d+(?:\s*[,и–-]\s*\d+)*)\s*семестр`,
			Volume:        `(?i)(\d+)\s*з(?:ач[её]тн\p{L}*|\.)\s*е(?:диниц\p{L}*|\.)`,
			VolumeDetail:  `(?is)(?:объ[её]м\s+дисциплины|трудо[её]мкость)\s*[:.]?\s*(.*?)(?:\n\n|\n\d+\.\s)`,
			Outcome:       `(?:УК|ОПК|ПК|ОК|СК)-\d+`,
			TextSection:   `(Раздел\s+\d+\.?)`,
		},

		ToolAliases: []ToolAlias{
			{Tool: "python", Keywords: []string{"python", "питон", "django", "flask", "numpy", "pandas", "matplotlib", "scipy", "jupyter", "notebook"}},
			{Tool: "java", Keywords: []string{"java", "jdk", "jvm", "spring", "maven", "gradle"}},
			{Tool: "c++", Keywords: []string{"c++", "cpp", "stl", "шаблон", "template"}},
			{Tool: "javascript", Keywords: []string{"javascript", "js", "node", "react", "angular", "vue", "typescript"}},
			{Tool: "matlab", Keywords: []string{"matlab", "матлаб", "simulink", "моделирован"}},
			{Tool: "visual studio", Keywords: []string{"visual studio", "vs code", "vscode", "отладка", "debug", "ide"}},
			{Tool: "mysql", Keywords: []string{"mysql", "sql", "база данных", "бд", "запрос", "таблиц"}},
			{Tool: "postgresql", Keywords: []string{"postgresql", "postgres"}},
			{Tool: "git", Keywords: []string{"git", "github", "gitlab", "версион", "репозитор"}},
			{Tool: "docker", Keywords: []string{"docker", "контейнер", "виртуализац"}},
			{Tool: "linux", Keywords: []string{"linux", "ubuntu", "терминал", "bash", "командн строк"}},
			{Tool: "latex", Keywords: []string{"latex", "tex", "набор текст", "верстк"}},
			{Tool: "microsoft office", Keywords: []string{"office", "word", "excel", "powerpoint"}},
		},

		Categories: CategoryKeywords{
			Technical: stems(
				"программирован", "алгоритм", "информатик", "математик", "вычислит",
				"компьютер", "сеть", "базы данных", "разработк", "инженер", "технолог",
				"механик", "электрон", "автоматиз", "робот", "искусственн", "машинн",
				"нейрон", "кибернетик", "системн", "архитектур", "микропроцессор",
				"телекоммуникац", "криптограф", "блокчейн", "devops", "sql", "python",
				"java", "c++", "javascript", "web", "api", "frontend", "backend",
				"физик", "оптик", "квантов", "статистик", "теория вероятност",
				"дискретн", "линейн алгебр", "дифференциальн", "численн метод",
			),
			Humanitarian: stems(
				"философ", "истори", "литератур", "язык", "лингвистик", "культур",
				"социолог", "психолог", "педагогик", "право", "юриспруденц",
				"экономик", "менеджмент", "маркетинг", "управлен", "политолог",
				"журналист", "филолог", "иностранн", "английск", "немецк",
				"французск", "перевод", "коммуникац", "этик", "эстетик",
				"религиоведен", "археолог", "антрополог", "документоведен",
			),
			NaturalScience: stems(
				"биолог", "хими", "эколог", "геолог", "географ", "астроном",
				"ботаник", "зоолог", "генетик", "биохим", "микробиолог",
				"анатоми", "физиолог", "палеонтолог", "океанолог", "метеоролог",
				"почвоведен", "биофизик", "молекулярн", "клеточн", "органическ",
				"неорганическ", "аналитическ хим", "биотехнолог",
			),
		},
	}
}

func stems(ss ...string) []WeightedStem {
	out := make([]WeightedStem, len(ss))
	for i, s := range ss {
		out[i] = WeightedStem{Stem: s, Weight: 1}
	}
	return out
}
