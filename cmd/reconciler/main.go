package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ebay-reconciler/infrastructure/integrator/finance"
	"github.com/vfg2006/ebay-reconciler/infrastructure/integrator/finance/financeclient"
	"github.com/vfg2006/ebay-reconciler/infrastructure/integrator/trading"
	"github.com/vfg2006/ebay-reconciler/infrastructure/integrator/trading/tradingclient"
	"github.com/vfg2006/ebay-reconciler/internal/config"
	"github.com/vfg2006/ebay-reconciler/internal/domain"
	"github.com/vfg2006/ebay-reconciler/internal/export"
	"github.com/vfg2006/ebay-reconciler/internal/usecases/reconciling"
	"github.com/vfg2006/ebay-reconciler/pkg/utils"
)

// Códigos de saída do binário de linha de comando
const (
	exitOK                = 0
	exitIngestionFailure  = 1
	exitMissingCredential = 2
	exitEmptyResult       = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	configureLogger()

	allocationFlag := flag.String("allocation", "unit", "modo de alocação: order ou unit")
	feeModeFlag := flag.String("fees", "estimated", "modo de tarifa: estimated ou matched")
	refundsFlag := flag.Bool("refunds", false, "lista os estornos do período em vez de reconciliar")
	outFlag := flag.String("out", "", "diretório de saída do CSV (padrão: RECONCILIATION_OUTPUT_DIR)")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar a configuração")
		return exitIngestionFailure
	}

	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Error("Credencial obrigatória ausente na configuração")
		return exitMissingCredential
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	reader := bufio.NewReader(os.Stdin)
	period, err := promptPeriod(reader, cfg)
	if err != nil {
		logrus.WithError(err).Error("Erro ao ler o período")
		return exitIngestionFailure
	}

	tradingClient := tradingclient.NewClient(cfg)
	tradingIntegrator := trading.New(cfg, tradingClient)

	financeClient := financeclient.NewClient(cfg)
	financeIntegrator := finance.New(cfg, financeClient)

	reconcileService, err := reconciling.NewService(cfg, tradingIntegrator, financeIntegrator)
	if err != nil {
		logrus.WithError(err).Error("Erro ao inicializar o serviço de reconciliação")
		return exitIngestionFailure
	}

	outputDir := cfg.Reconciliation.OutputDir
	if *outFlag != "" {
		outputDir = *outFlag
	}

	exporter := export.NewCSVExporter()

	if *refundsFlag {
		return runRefunds(reconcileService, exporter, period, outputDir)
	}

	return runReconcile(reconcileService, exporter, period, outputDir, *allocationFlag, *feeModeFlag)
}

func runReconcile(
	service reconciling.Reconciler,
	exporter export.Exporter,
	period domain.ReportingPeriod,
	outputDir string,
	allocationRaw string,
	feeModeRaw string,
) int {
	allocation, err := reconciling.ParseAllocationMode(allocationRaw)
	if err != nil {
		logrus.WithError(err).Error("Modo de alocação inválido")
		return exitIngestionFailure
	}

	feeMode, err := reconciling.ParseFeeMode(feeModeRaw)
	if err != nil {
		logrus.WithError(err).Error("Modo de tarifa inválido")
		return exitIngestionFailure
	}

	report, err := service.Reconcile(period, reconciling.Options{
		Allocation: allocation,
		FeeMode:    feeMode,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro na reconciliação do período")
		return exitIngestionFailure
	}

	outPath, err := outputPath(outputDir, "reconciliation", period)
	if err != nil {
		logrus.WithError(err).Error("Erro ao montar o caminho de saída")
		return exitIngestionFailure
	}

	if err := exporter.ExportReport(outPath, report); err != nil {
		logrus.WithError(err).Error("Erro ao exportar o relatório")
		return exitIngestionFailure
	}

	// Período sem vendas ainda grava o artefato, só com o cabeçalho
	if len(report.Rows) == 0 {
		fmt.Printf("Nenhum pedido concluído encontrado em %s; cabeçalho gravado em %s\n", period.String(), outPath)
		return exitEmptyResult
	}

	fmt.Printf("Relatório com %d linhas gravado em %s\n", len(report.Rows), outPath)
	return exitOK
}

func runRefunds(
	service reconciling.Reconciler,
	exporter export.Exporter,
	period domain.ReportingPeriod,
	outputDir string,
) int {
	refunds, err := service.ListRefunds(period)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar os estornos do período")
		return exitIngestionFailure
	}

	outPath, err := outputPath(outputDir, "refunds", period)
	if err != nil {
		logrus.WithError(err).Error("Erro ao montar o caminho de saída")
		return exitIngestionFailure
	}

	if err := exporter.ExportRefunds(outPath, refunds); err != nil {
		logrus.WithError(err).Error("Erro ao exportar o relatório de estornos")
		return exitIngestionFailure
	}

	if len(refunds) == 0 {
		fmt.Printf("Nenhum estorno encontrado em %s; cabeçalho gravado em %s\n", period.String(), outPath)
		return exitEmptyResult
	}

	fmt.Printf("Relatório de estornos com %d linhas gravado em %s\n", len(refunds), outPath)
	return exitOK
}

// promptPeriod lê ano e mês do terminal, repetindo o prompt até uma
// entrada válida dentro da janela permitida
func promptPeriod(reader *bufio.Reader, cfg *config.Config) (domain.ReportingPeriod, error) {
	currentYear := time.Now().Year()

	var year int
	for {
		value, err := promptInt(reader, fmt.Sprintf("Ano (%d-%d): ", cfg.Reconciliation.MinYear, currentYear))
		if err != nil {
			return domain.ReportingPeriod{}, err
		}
		if value >= cfg.Reconciliation.MinYear && value <= currentYear {
			year = value
			break
		}
		fmt.Printf("Ano fora da janela permitida (%d-%d)\n", cfg.Reconciliation.MinYear, currentYear)
	}

	var month int
	for {
		value, err := promptInt(reader, "Mês (1-12): ")
		if err != nil {
			return domain.ReportingPeriod{}, err
		}
		if value >= 1 && value <= 12 {
			month = value
			break
		}
		fmt.Println("Mês inválido, informe um valor entre 1 e 12")
	}

	return domain.NewReportingPeriod(year, month)
}

func promptInt(reader *bufio.Reader, prompt string) (int, error) {
	for {
		fmt.Print(prompt)

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return 0, errors.New("entrada encerrada antes de um valor válido")
		}

		value, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return value, nil
		}
		fmt.Println("Valor inválido, informe um número inteiro")
	}
}

func outputPath(dir, prefix string, period domain.ReportingPeriod) (string, error) {
	runID, err := utils.GenerateRunID()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, fmt.Sprintf("%s_%s_%s.csv", prefix, period.String(), runID)), nil
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
