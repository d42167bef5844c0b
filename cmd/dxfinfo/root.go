package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"

	dxf "github.com/yk35/netDXF"
	"github.com/yk35/netDXF/entities"
	"github.com/yk35/netDXF/utils"
)

var rootCmd = &cobra.Command{
	Use:   "dxfinfo [file.dxf]",
	Short: "Summarize a DXF drawing",
	Long:  "dxfinfo decodes a DXF file and prints its header, tables, blocks and entity counts. Without a file argument a file dialog is shown.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSummary,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log skipped records to stderr")
	rootCmd.PersistentFlags().String("codepage", "", "Source code page, e.g. ANSI_1252 or ANSI_936 (default: UTF-8)")
	rootCmd.PersistentFlags().Bool("pause", false, "Wait for a key press before exiting")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("codepage", rootCmd.PersistentFlags().Lookup("codepage"))
	_ = viper.BindPFlag("pause", rootCmd.PersistentFlags().Lookup("pause"))
}

func initConfig() {
	viper.SetEnvPrefix("DXFINFO")
	viper.AutomaticEnv()
}

// codePages $DWGCODEPAGE 取值 -> 解码器
var codePages = map[string]encoding.Encoding{
	"ANSI_874":  charmap.Windows874,
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
	"ANSI_1258": charmap.Windows1258,
	"ANSI_932":  japanese.ShiftJIS,
	"ANSI_936":  simplifiedchinese.GBK,
	"ANSI_949":  korean.EUCKR,
	"ANSI_950":  traditionalchinese.Big5,
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// pickFile 没有传入文件时弹出文件选择框
func pickFile(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	name, err := zenity.SelectFile(
		zenity.Title("选择 DXF 文件"),
		zenity.FileFilter{Name: "DXF", Patterns: []string{"*.dxf", "*.DXF"}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", errors.New("no file selected")
	}
	return name, err
}

func openDocument(args []string) (string, *dxf.Document, error) {
	filename, err := pickFile(args)
	if err != nil {
		return "", nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return "", nil, err
	}
	defer file.Close()

	var reader io.Reader = file
	if name := strings.ToUpper(viper.GetString("codepage")); name != "" {
		enc, ok := codePages[name]
		if !ok {
			return "", nil, fmt.Errorf("unsupported code page %q", name)
		}
		reader = transform.NewReader(file, enc.NewDecoder())
	}

	doc, err := dxf.Load(reader, dxf.WithSource(filename), dxf.WithLogger(newLogger()))
	if err != nil {
		return "", nil, fmt.Errorf("decoding %s: %w", filename, err)
	}
	return filename, doc, nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	filename, doc, err := openDocument(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "文件: %s\n", filename)
	fmt.Fprintf(out, "版本: %s  句柄种子: %s  代码页: %s\n", doc.Header.Version, doc.Header.HandleSeed, doc.Header.CodePage)
	fmt.Fprintf(out, "图层: %d  线型: %d  文字样式: %d  应用程序: %d  块: %d\n",
		doc.Tables.Layers.Len(), doc.Tables.LineTypes.Len(), doc.Tables.TextStyles.Len(),
		doc.Tables.AppRegs.Len(), doc.Blocks.Len(),
	)

	counts := make(map[entities.Kind]int)
	for _, e := range doc.Entities {
		counts[e.Kind()]++
	}
	kinds := make([]entities.Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	if box := utils.Extents(doc.Entities); !box.IsEmpty() {
		fmt.Fprintf(out, "范围: (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
			box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z)
	}

	fmt.Fprintf(out, "实体: %d\n", len(doc.Entities))
	for _, k := range kinds {
		fmt.Fprintf(out, "    %-20s %d\n", k, counts[k])
	}
	return nil
}
