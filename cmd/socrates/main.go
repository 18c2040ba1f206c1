package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mariacarolk/socrates-dash-v2/internal/config"
	"github.com/mariacarolk/socrates-dash-v2/internal/server"
	"github.com/mariacarolk/socrates-dash-v2/internal/util"
)

var (
	port    = flag.Int("port", 0, "porta do servidor (config.toml tem prioridade quando define port)")
	devMode = flag.Bool("dev", false, "modo de desenvolvimento")
	dataDir = flag.String("dataDir", "", "diretório de dados (sobrepõe o arquivo de configuração)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Sócrates Online - Gestão de Faturamento")
	fmt.Println("==========================================")

	// carrega a configuração
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("falha ao carregar configuração, usando padrões: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// parâmetros de linha de comando sobrepõem a configuração
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("falha ao inicializar o servidor: %v", err)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("servidor iniciando na porta %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("falha ao iniciar o servidor: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("não foi possível abrir o navegador, acesse: %s\n", url)
		}
	} else {
		fmt.Printf("modo de desenvolvimento: acesse %s\n", url)
	}

	fmt.Println("\npressione Ctrl+C para encerrar...")

	// aguarda sinal de encerramento
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nencerrando o servidor...")
	if err := srv.Shutdown(); err != nil {
		log.Printf("falha ao salvar antes de encerrar: %v", err)
	}
}
