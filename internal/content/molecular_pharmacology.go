package content

func init() {
	Register(pack(
		SubjectConfig{
			ID:          "molecular-pharmacology",
			Name:        "分子薬理学",
			Description: "薬物と生体分子の相互作用、受容体理論、シグナル伝達経路など分子レベルでの薬理学を学習します。",
		},
		FormatCloze,
		[]CategoryConfig{
			{ID: "mol-pharm-8-catecholamine", Name: "分子薬理学 第8章 カテコラミン系", NameEn: "Catecholamine System", Description: "ドーパミン、ノルアドレナリン、アドレナリンの薬理学", Start: 1, End: 28},
			{ID: "mol-pharm-9-serotonin-histamine", Name: "分子薬理学 第9章 セロトニン、ヒスタミン系", NameEn: "Serotonin and Histamine System", Description: "セロトニンとヒスタミンの薬理学", Start: 29, End: 52},
			{ID: "mol-pharm-10-eicosanoids", Name: "分子薬理学 第10章 エイコサノイドとその他の脂質メディエーター", NameEn: "Eicosanoids and Other Lipid Mediators", Description: "プロスタグランジン、ロイコトリエンなどの脂質メディエーター", Start: 53, End: 67},
			{ID: "mol-pharm-11-circulating-peptides", Name: "分子薬理学 第11章 循環ペプチド", NameEn: "Circulating Peptides", Description: "アンジオテンシン、インスリンなどの循環ペプチド", Start: 68, End: 78},
			{ID: "mol-pharm-12-neuropeptides", Name: "分子薬理学 第12章 神経ペプチド、ATP・NO", NameEn: "Neuropeptides, ATP & NO", Description: "神経ペプチド、ATP、一酸化窒素の薬理学", Start: 79, End: 92},
			{ID: "mol-pharm-13-antipsychotics", Name: "分子薬理学 第13章 統合失調症治療薬", NameEn: "Antipsychotic Drugs", Description: "定型・非定型抗精神病薬の薬理学", Start: 93, End: 108},
			{ID: "mol-pharm-14-antidepressants", Name: "分子薬理学 第14章 抗うつ薬、気分安定薬・中枢興奮薬", NameEn: "Antidepressants, Mood Stabilizers & CNS Stimulants", Description: "抗うつ薬、双極性障害治療薬、中枢興奮薬の薬理学", Start: 109, End: 136},
		},
	))
}
