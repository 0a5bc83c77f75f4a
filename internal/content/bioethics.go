package content

func init() {
	Register(pack(
		SubjectConfig{
			ID:          "bioethics",
			Name:        "生命倫理",
			Description: "生命倫理、関連法規、医療現場でのコミュニケーションに関する知識を問う問題集。",
		},
		FormatBlocks,
		[]CategoryConfig{
			{ID: "bioethics-ox", Name: "生命倫理OX問題", NameEn: "Bioethics O/X Quiz", Description: "生命倫理に関する基本的な知識の正誤を問う問題です。", Start: 1, End: 98},
		},
	))
}
