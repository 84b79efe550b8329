package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/erichartline/fantrax-scripts/internal/config"
	"github.com/erichartline/fantrax-scripts/internal/exporter"
	"github.com/erichartline/fantrax-scripts/internal/matcher"
	"github.com/erichartline/fantrax-scripts/internal/model"
	"github.com/erichartline/fantrax-scripts/internal/parser"
	"github.com/erichartline/fantrax-scripts/internal/server"
	"github.com/erichartline/fantrax-scripts/internal/store"
)

var (
	ibwPath     = flag.String("ibw", "", "IBW 榜单文本文件路径")
	fantraxPath = flag.String("fantrax", "", "Fantrax 名单文件路径 (csv/xlsx)")
	outPath     = flag.String("out", "", "匹配报表输出路径 (默认 <数据目录>/exports/<运行ID>.csv)")
	xlsxPath    = flag.String("xlsx", "", "同时导出 Excel 报表到该路径")
	noHeader    = flag.Bool("noHeader", false, "Fantrax 名单没有表头行 (按列号访问)")
	serve       = flag.Bool("serve", false, "以 HTTP 服务方式运行")
	port        = flag.Int("port", 0, "服务端口 (覆盖配置文件)")
	devMode     = flag.Bool("dev", false, "开发模式")
	dataDir     = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Fantrax Scripts - IBW 榜单匹配工具")
	fmt.Println("==========================================")

	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}

	// 命令行参数覆盖配置
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	if *serve {
		runServer(cfg)
		return
	}

	if *ibwPath == "" || *fantraxPath == "" {
		fmt.Println("\n用法: fantrax -ibw <榜单.txt> -fantrax <名单.csv> [-out 报表.csv] [-xlsx 报表.xlsx]")
		fmt.Println("      fantrax -serve [-port 20417]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := runOnce(cfg); err != nil {
		log.Fatalf("匹配失败: %v", err)
	}
}

// runOnce 一次性执行匹配并导出报表
func runOnce(cfg *config.AppConfig) error {
	started := time.Now()

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return fmt.Errorf("创建数据目录: %w", err)
	}

	ibwRecords, warnings, err := parser.ParseIBWFile(*ibwPath)
	if err != nil {
		return fmt.Errorf("解析 IBW 榜单: %w", err)
	}
	for _, w := range warnings {
		fmt.Printf("警告: %s\n", w)
	}

	fantraxRecords, err := parser.LoadRecords(*fantraxPath, !*noHeader)
	if err != nil {
		return fmt.Errorf("读取 Fantrax 名单: %w", err)
	}

	result, err := matcher.Reconcile(fantraxRecords, ibwRecords, cfg.Mapping.Overrides())
	if err != nil {
		return err
	}
	rows := matcher.FormatRows(result.Matches, result.Mapping)

	report := model.RunReport{
		IBWFile:     filepath.Base(*ibwPath),
		FantraxFile: filepath.Base(*fantraxPath),
		Stats:       result.Stats,
		Warnings:    warnings,
		Duration:    time.Since(started),
		CreatedAt:   started,
	}

	// 写入运行日志
	runStore, err := store.New(filepath.Join(dataDir, "fantrax.db"))
	if err != nil {
		return fmt.Errorf("打开运行日志数据库: %w", err)
	}
	defer runStore.Close()

	runID, err := runStore.SaveRun(&report, rows)
	if err != nil {
		return fmt.Errorf("保存运行记录: %w", err)
	}

	out := *outPath
	if out == "" {
		out = filepath.Join(dataDir, "exports", runID+".csv")
	}
	if err := exporter.WriteCSVFile(out, rows); err != nil {
		return fmt.Errorf("导出 CSV 报表: %w", err)
	}
	fmt.Printf("报表已导出: %s\n", out)

	if *xlsxPath != "" {
		if err := exporter.WriteExcel(*xlsxPath, rows, result.Stats); err != nil {
			return fmt.Errorf("导出 Excel 报表: %w", err)
		}
		fmt.Printf("Excel 报表已导出: %s\n", *xlsxPath)
	}

	fmt.Println("\n---------------- 匹配结果 ----------------")
	fmt.Printf("IBW 球员总数:   %d\n", result.Stats.TotalIBWPlayers)
	fmt.Printf("精确匹配:       %d\n", result.Stats.ExactMatches)
	fmt.Printf("仅按姓名匹配:   %d\n", result.Stats.NameOnlyMatches)
	fmt.Printf("匹配总数:       %d\n", result.Stats.TotalMatches)
	fmt.Printf("运行 ID:        %s\n", runID)
	fmt.Printf("耗时:           %s\n", report.Duration.Round(time.Millisecond))
	return nil
}

// runServer 以 HTTP 服务方式运行，等待 Ctrl+C 退出
func runServer(cfg *config.AppConfig) {
	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	if cfg.Server.DevMode {
		fmt.Printf("开发模式: 请访问 http://localhost:%d\n", cfg.Server.Port)
	}
	fmt.Println("\n按 Ctrl+C 停止服务...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n正在关闭服务...")
	if err := srv.Close(); err != nil {
		log.Printf("关闭存储失败: %v", err)
	}
}
