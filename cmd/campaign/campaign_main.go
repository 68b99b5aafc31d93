package main

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"Stronghold/internal/campaign/dc"
	"Stronghold/internal/campaign/dice"
	"Stronghold/internal/campaign/entity"
	"Stronghold/internal/campaign/infra/persistence/model"
	campaignmongo "Stronghold/internal/campaign/infra/persistence/mongodb"
	campaignmysql "Stronghold/internal/campaign/infra/persistence/mysql"
	"Stronghold/internal/campaign/interfaces"
	"Stronghold/internal/shared/gameconfig/catalog"
	"Stronghold/internal/shared/infrastructure/db"
	sharedmongo "Stronghold/internal/shared/infrastructure/mongo"
	"Stronghold/internal/shared/logs"
	"Stronghold/internal/shared/serverconfig"
	"Stronghold/internal/shared/session"
	transportgrpc "Stronghold/internal/shared/transport/grpc"
	transporthttp "Stronghold/internal/shared/transport/http"
	"Stronghold/internal/shared/transport/ws"
	"Stronghold/modules/kit/logx"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	serverconfig.Load()
	if err := logs.Init("campaign", serverconfig.Conf.Log); err != nil {
		panic(err)
	}
	logs.Info("conf", zap.Any("conf", serverconfig.Conf))

	campaignCfg := serverconfig.Conf.Campaign
	if campaignCfg.ServerID > 0 && os.Getenv("SNOWFLAKE_NODE_ID") == "" {
		_ = os.Setenv("SNOWFLAKE_NODE_ID", strconv.Itoa(campaignCfg.ServerID))
	}
	if campaignCfg.FlushIntervalS > 0 {
		dc.SetDefaultFlushEvery(time.Duration(campaignCfg.FlushIntervalS) * time.Second)
	}

	catalog.Load()

	gormDB, err := db.Open(serverconfig.Conf.MySQL)
	if err != nil {
		logs.Fatal("open mysql failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(&model.CampaignState{}); err != nil {
		logs.Fatal("migrate campaign_states failed", zap.Error(err))
	}

	mongoClient, err := sharedmongo.Open(serverconfig.Conf.MongoDB, logs.Logger())
	if err != nil {
		logs.Fatal("open mongodb failed", zap.Error(err))
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	mongoDB := mongoClient.Database(serverconfig.Conf.MongoDB.Database)

	var entityOpts []entity.Option
	if campaignCfg.DiceSeed != 0 {
		// 固定骰子序列，仅用于联调和回放
		entityOpts = append(entityOpts, entity.WithRoller(dice.New(campaignCfg.DiceSeed)))
	}
	campaignRepo := campaignmysql.NewCampaignRepo(gormDB, entityOpts...)
	journalRepo := campaignmongo.NewJournalRepo(mongoDB)

	baseLogger := logx.NewZapLogger(logs.Logger())
	sessMgr := session.NewSessMgr()
	wsRouter := ws.NewRouter(baseLogger)

	sys := actor.NewActorSystem()
	campaignModule := interfaces.New(sys, sessMgr, campaignRepo, journalRepo, campaignCfg.EditSecret, baseLogger)

	wsModules := []ws.Registrar{
		campaignModule,
	}
	for _, m := range wsModules {
		m.WsRegister(wsRouter)
	}

	httpHost := serverconfig.Conf.HTTPServer.Host
	if httpHost == "" {
		httpHost = "0.0.0.0"
	}
	httpAddr := fmt.Sprintf("%s:%d", httpHost, serverconfig.Conf.HTTPServer.Port)

	httpServer := transporthttp.NewHttpServer(httpAddr, nil, baseLogger)
	httpModules := []transporthttp.Registrar{
		campaignModule,
	}
	for _, m := range httpModules {
		m.HttpRegister(httpServer.Group())
	}

	wsServer := ws.NewServer(wsRouter, baseLogger)
	httpServer.Engine().Any("/ws", gin.WrapH(wsServer))
	httpServer.Engine().Any("/ws/*any", gin.WrapH(wsServer))

	grpcHost := serverconfig.Conf.GRPCServer.Host
	if grpcHost == "" {
		grpcHost = "0.0.0.0"
	}
	grpcAddr := fmt.Sprintf("%s:%d", grpcHost, serverconfig.Conf.GRPCServer.Port)
	grpcServer := transportgrpc.NewServer(grpcAddr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	go func() {
		logs.Info("campaign http server started", zap.String("addr", httpAddr))
		if err := httpServer.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- fmt.Errorf("campaign http server start failed: %w", err)
			return
		}
		errCh <- nil
	}()
	go func() {
		logs.Info("campaign grpc health server started", zap.String("addr", grpcAddr))
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("campaign grpc server start failed: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		logs.Info("收到退出信号，准备优雅退出")
	case err := <-errCh:
		if err != nil {
			logs.Error("服务异常退出", zap.Error(err))
		}
	}

	grpcServer.SetServing(false)

	// 先停 actor：CampaignActor 停机钩子里会把脏存档同步落库
	if err := sys.Root.StopFuture(campaignModule.ManagerPID()).Wait(); err != nil {
		logs.Error("stop campaign manager actor failed", zap.Error(err))
	}
	sys.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
	grpcServer.Stop()
}
