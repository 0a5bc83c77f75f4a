package content

func init() {
	Register(pack(
		SubjectConfig{
			ID:          "microbiology",
			Name:        "微生物学",
			Description: "細菌、ウイルス、真菌などの微生物の性質や、それらが引き起こす感染症について学びます。",
		},
		FormatCloze,
		[]CategoryConfig{
			{ID: "micro-1-structure", Name: "微生物学 第1章 細菌の構造と機能", NameEn: "Bacterial Structure and Function", Description: "細菌の基本構造、細胞壁、核様体など", Start: 1, End: 20},
			{ID: "micro-2-properties", Name: "微生物学 第2章 細菌の一般性状", NameEn: "General Properties of Bacteria", Description: "細菌の成長、繁殖、芽胞、代謝など", Start: 21, End: 40},
			{ID: "micro-3-cocci", Name: "微生物学 第3章 グラム陽性球菌およびグラム陰性球菌", NameEn: "Gram-positive and Gram-negative Cocci", Description: "ブドウ球菌、レンサ球菌、髄膜炎菌など", Start: 41, End: 60},
			{ID: "micro-4-gram-positive-bacilli", Name: "微生物学 第4回 グラム陽性桿菌", NameEn: "Gram-positive Bacilli", Description: "炭疽菌、ジフテリア菌、破傷風菌など", Start: 61, End: 80},
			{ID: "micro-5-gram-negative-bacilli", Name: "微生物学 第5回 グラム陰性桿菌", NameEn: "Gram-negative Bacilli", Description: "大腸菌、サルモネラ、コレラ菌など", Start: 81, End: 100},
			{ID: "micro-6-special-bacteria", Name: "微生物学 第6回 特殊細菌", NameEn: "Special Bacteria", Description: "結核菌、らせん菌、スピロヘータなど", Start: 101, End: 120},
			{ID: "micro-7-mycoplasma-etc", Name: "微生物学 第7回 マイコプラズマ・リケッチア・クラミジア", NameEn: "Mycoplasma, Rickettsia, Chlamydia", Description: "細胞壁を持たない、または偏性細胞内寄生性の細菌", Start: 121, End: 140},
		},
	))
}
