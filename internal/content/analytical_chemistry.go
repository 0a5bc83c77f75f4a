package content

func init() {
	Register(pack(
		SubjectConfig{
			ID:          "analytical-chemistry",
			Name:        "分析化学",
			Description: "機器を用いた分析法の原理を理解し、医薬品の確認、純度試験、定量法に応用する知識を学びます。",
		},
		FormatCloze,
		[]CategoryConfig{
			{ID: "anal-chem-1-intro", Name: "分析化学 第1章 機器分析学概論", NameEn: "Introduction to Instrumental Analysis", Description: "分光分析法、構造解析法、分離分析法の概要", Start: 1, End: 20},
			{ID: "anal-chem-2-uv-vis", Name: "分析化学 第2章 紫外可視吸光度法", NameEn: "UV-Vis Spectrophotometry", Description: "電子遷移、発色団、ランベルト・ベールの法則", Start: 21, End: 40},
			{ID: "anal-chem-3-fluorometry", Name: "分析化学 第3章 蛍光光度法", NameEn: "Fluorometry", Description: "蛍光原理、ストークスシフト、蛍光消光", Start: 41, End: 60},
			{ID: "anal-chem-4-chemiluminescence", Name: "分析化学 第4章 化学発光法・熱分析法", NameEn: "Chemiluminescence and Thermal Analysis", Description: "化学発光、TGA、DSCの原理と応用", Start: 61, End: 80},
			{ID: "anal-chem-5-aas", Name: "分析化学 第5章 原子吸光光度法", NameEn: "Atomic Absorption Spectrometry", Description: "原子化、中空陰極ランプ、各種干渉", Start: 81, End: 100},
			{ID: "anal-chem-6-aes", Name: "分析化学 第6章 原子発光分析法", NameEn: "Atomic Emission Spectrometry", Description: "発光原理、ICP-AES、ICP-MS", Start: 101, End: 120},
			{ID: "anal-chem-7-xrd", Name: "分析化学 第7章 X線回折測定法", NameEn: "X-ray Diffraction", Description: "ブラッグの法則、結晶多形、非晶質", Start: 121, End: 140},
			{ID: "anal-chem-8-polarimetry", Name: "分析化学 第8章 旋光度・旋光分散・円偏光二色性", NameEn: "Polarimetry, ORD, CD", Description: "光学活性、比旋光度、コットン効果", Start: 141, End: 160},
		},
	))
}
