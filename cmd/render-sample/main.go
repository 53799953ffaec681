package main

// Isolated render test: generates a sample estimate PDF without Slack
// integration, so layout changes can be eyeballed locally.

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kaito5551995/slack-estimate-bot/internal/canvas"
	"github.com/kaito5551995/slack-estimate-bot/internal/generator"
	"github.com/kaito5551995/slack-estimate-bot/internal/layout"
	"github.com/kaito5551995/slack-estimate-bot/internal/models"
)

func main() {
	fmt.Println("テスト見積書PDFを生成中...")

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	issuer := layout.Issuer{
		Name:           "株式会社ミナト安全施設",
		Representative: "代表取締役 湊崎義美",
		PostalCode:     "680-0914",
		Address:        "鳥取県鳥取市南安長１丁目２０番３６号",
		Tel:            "0857-30-1121",
		Email:          "info@minato-anzen.com",
	}

	newCanvas := func() canvas.Canvas {
		return canvas.NewPDF(canvas.Options{
			FontDir: "fonts",
			Seal:    canvas.SealText{Right: "㈱ミナト", Middle: "安全施設", Left: "之印"},
		})
	}

	gen := generator.NewGenerator(layout.NewEngine(layout.DefaultParams(), issuer, logger), newCanvas, logger)

	result, err := gen.Generate(models.Submission{
		ClientCompany: "株式会社テスト商事",
		ClientPerson:  "山田太郎",
		DocumentType:  "estimate",
		ItemsText: "コーン標識（赤白）, 10, 3500\n" +
			"安全ベスト（反射付き）, 20, 2800\n" +
			"LED回転灯, 5, 12000\n" +
			"バリケードフェンス 1800mm, 8, 8500\n" +
			"工事看板「工事中」, 3, 15000",
	})
	if err != nil {
		log.Fatalf("PDF生成エラー: %v", err)
	}

	if err := os.MkdirAll("output", 0755); err != nil {
		log.Fatalf("failed to create output dir: %v", err)
	}
	outputPath := filepath.Join("output", "test_estimate.pdf")
	if err := os.WriteFile(outputPath, result.PDF, 0644); err != nil {
		log.Fatalf("failed to write PDF: %v", err)
	}

	fmt.Printf("✅ PDF生成成功: %s\n", outputPath)
	fmt.Printf("   ファイルサイズ: %.1f KB\n", float64(len(result.PDF))/1024)
	fmt.Printf("   品目数: %d件 / 合計金額: ¥%d（税込）\n",
		result.Summary.ItemCount, result.Summary.GrandTotal)
}
